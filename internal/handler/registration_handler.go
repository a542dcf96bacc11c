package handler

import (
	"encoding/json"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

func (h *Handler) GetRegistrationLink(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RegistrationLinkEnvelope{
		Success:          true,
		RegistrationLink: h.registrationService.Get(),
	})
}

func (h *Handler) RegistrationLinkAction(w http.ResponseWriter, r *http.Request) {
	var req registrationLinkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}

	switch req.Action {
	case "updateLink":
		link, err := h.registrationService.Update(creds, req.RegistrationLink)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RegistrationLinkEnvelope{
			Success:          true,
			Message:          "Registration link updated successfully",
			RegistrationLink: link,
		})

	case "resetLink":
		link, err := h.registrationService.Reset(creds)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RegistrationLinkEnvelope{
			Success:          true,
			Message:          "Registration link reset to default",
			RegistrationLink: link,
		})

	default:
		h.handleError(w, domain.ErrInvalidAction)
	}
}
