package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

// GetAnnouncements serves the public view: active entries only, already
// sorted by priority then recency.
func (h *Handler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context(), true)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnnouncementsEnvelope{
		Success:       true,
		Announcements: domainAnnouncementsToHTTP(announcements),
	})
}

func (h *Handler) AnnouncementAction(w http.ResponseWriter, r *http.Request) {
	var req announcementActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}
	input := service.AnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
		IsActive: req.IsActive,
	}

	var (
		announcements []*domain.Announcement
		message       string
		err           error
	)

	switch req.Action {
	case "addAnnouncement":
		announcements, err = h.announcementService.Add(r.Context(), creds, input)
		message = "Announcement added successfully"
	case "updateAnnouncement":
		announcements, err = h.announcementService.Update(r.Context(), creds, req.ID, input)
		message = "Announcement updated successfully"
	case "deleteAnnouncement":
		announcements, err = h.announcementService.Delete(r.Context(), creds, req.AnnouncementID)
		message = "Announcement deleted successfully"
	case "toggleAnnouncement":
		var active bool
		announcements, active, err = h.announcementService.Toggle(r.Context(), creds, req.AnnouncementID)
		state := "deactivated"
		if active {
			state = "activated"
		}
		message = fmt.Sprintf("Announcement %s successfully", state)
	case "resetAnnouncements":
		announcements, err = h.announcementService.Reset(r.Context(), creds)
		message = "All announcements reset successfully"
	default:
		h.handleError(w, domain.ErrInvalidAction)
		return
	}

	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnnouncementsEnvelope{
		Success:       true,
		Message:       message,
		Announcements: domainAnnouncementsToHTTP(announcements),
	})
}
