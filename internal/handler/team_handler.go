package handler

import (
	"encoding/json"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

// ListTeams serves the public team list. With ?action=auth it doubles as the
// credential probe the admin login form uses.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("action") == "auth" {
		creds := service.Credentials{
			Username: r.URL.Query().Get("username"),
			Password: r.URL.Query().Get("password"),
		}
		if err := h.teamService.Authenticate(creds); err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageEnvelope{
			Success: true,
			Message: "Authentication successful",
		})
		return
	}

	teams, err := h.teamService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamsEnvelope{
		Success: true,
		Teams:   domainTeamsToHTTP(teams),
	})
}

func (h *Handler) TeamAction(w http.ResponseWriter, r *http.Request) {
	var req teamActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}

	switch req.Action {
	case "add":
		if req.Team == nil {
			h.handleError(w, domain.NewValidationError("Team data is required"))
			return
		}
		teams, err := h.teamService.Add(r.Context(), creds, teamInput(req.Team))
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TeamsEnvelope{Success: true, Teams: domainTeamsToHTTP(teams)})

	case "update":
		if req.Team == nil {
			h.handleError(w, domain.NewValidationError("Team data is required"))
			return
		}
		teams, err := h.teamService.Update(r.Context(), creds, req.Team.ID, teamInput(req.Team))
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TeamsEnvelope{Success: true, Teams: domainTeamsToHTTP(teams)})

	case "delete":
		teams, err := h.teamService.Delete(r.Context(), creds, req.TeamID)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TeamsEnvelope{Success: true, Teams: domainTeamsToHTTP(teams)})

	case "changePassword":
		if err := h.teamService.ChangePassword(creds, req.NewPassword); err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageEnvelope{
			Success: true,
			Message: "Password changed successfully",
		})

	default:
		h.handleError(w, domain.ErrInvalidAction)
	}
}

func teamInput(p *teamPayload) service.TeamInput {
	return service.TeamInput{
		Name:         p.Name,
		ProjectTitle: p.ProjectTitle,
		Status:       p.Status,
		Members:      p.Members,
	}
}
