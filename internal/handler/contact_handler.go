package handler

import (
	"encoding/json"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

func (h *Handler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.contactService.Get(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ContactInfoEnvelope{
		Success:     true,
		ContactInfo: domainContactToHTTP(info),
	})
}

func (h *Handler) ContactAction(w http.ResponseWriter, r *http.Request) {
	var req contactActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}

	switch req.Action {
	case "updateContact":
		social, err := parseSocialMediaInput(req.SocialMedia)
		if err != nil {
			h.handleError(w, err)
			return
		}
		info, err := h.contactService.Update(r.Context(), creds, service.ContactInput{
			Email:       req.Email,
			Discord:     req.Discord,
			Description: req.Description,
			SocialMedia: social,
		})
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ContactInfoEnvelope{
			Success:     true,
			Message:     "Contact info updated successfully",
			ContactInfo: domainContactToHTTP(info),
		})

	default:
		h.handleError(w, domain.ErrInvalidAction)
	}
}

type socialMediaInput struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	URL      string `json:"url"`
}

// parseSocialMediaInput accepts the three shapes clients have historically
// sent: a JSON list, a single JSON object, or a string containing the JSON
// serialization of either. A nil result means the field was absent.
func parseSocialMediaInput(raw json.RawMessage) ([]domain.SocialMediaLink, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = json.RawMessage(inner)
	}

	var records []socialMediaInput
	if err := json.Unmarshal(raw, &records); err != nil {
		var single socialMediaInput
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, domain.NewValidationError("Invalid social media data")
		}
		records = []socialMediaInput{single}
	}

	links := make([]domain.SocialMediaLink, 0, len(records))
	for _, rec := range records {
		links = append(links, domain.SocialMediaLink{
			Platform: rec.Platform,
			Handle:   rec.Handle,
			URL:      rec.URL,
		})
	}
	return links, nil
}
