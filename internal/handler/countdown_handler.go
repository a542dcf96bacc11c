package handler

import (
	"encoding/json"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

func (h *Handler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CountdownEnvelope{
		Success:   true,
		Countdown: domainCountdownToHTTP(h.countdownService.Get()),
	})
}

func (h *Handler) CountdownAction(w http.ResponseWriter, r *http.Request) {
	var req countdownActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}

	switch req.Action {
	case "updateCountdown":
		countdown, err := h.countdownService.Update(creds, service.CountdownUpdate{
			TargetDate:    req.TargetDate,
			TargetTime:    req.TargetTime,
			IsActive:      req.IsActive,
			CustomMessage: req.CustomMessage,
		})
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CountdownEnvelope{
			Success:   true,
			Message:   "Countdown updated successfully",
			Countdown: domainCountdownToHTTP(countdown),
		})

	case "resetCountdown":
		countdown, err := h.countdownService.Reset(creds)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CountdownEnvelope{
			Success:   true,
			Message:   "Countdown reset to inactive state",
			Countdown: domainCountdownToHTTP(countdown),
		})

	default:
		h.handleError(w, domain.ErrInvalidAction)
	}
}
