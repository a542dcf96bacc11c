package handler

import (
	"encoding/json"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TimelineEnvelope{
		Success: true,
		Phases:  domainPhasesToHTTP(h.timelineService.Phases()),
	})
}

func (h *Handler) TimelineAction(w http.ResponseWriter, r *http.Request) {
	var req timelineActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}

	switch req.Action {
	case "updatePhase":
		if req.PhaseIndex == nil {
			h.handleError(w, domain.NewValidationError("Invalid phase index"))
			return
		}
		update := service.PhaseUpdate{Progress: req.Progress}
		if req.Status != nil {
			status := domain.PhaseStatus(*req.Status)
			update.Status = &status
		}
		phases, err := h.timelineService.UpdatePhase(creds, *req.PhaseIndex, update)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TimelineEnvelope{
			Success: true,
			Message: "Timeline phase updated successfully",
			Phases:  domainPhasesToHTTP(phases),
		})

	case "resetTimeline":
		phases, err := h.timelineService.Reset(creds)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TimelineEnvelope{
			Success: true,
			Message: "Timeline reset successfully",
			Phases:  domainPhasesToHTTP(phases),
		})

	default:
		h.handleError(w, domain.ErrInvalidAction)
	}
}
