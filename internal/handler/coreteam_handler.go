package handler

import (
	"encoding/json"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

func (h *Handler) GetCoreTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.coreTeamService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CoreTeamEnvelope{
		Success:  true,
		CoreTeam: domainCoreTeamToHTTP(members),
	})
}

func (h *Handler) CoreTeamAction(w http.ResponseWriter, r *http.Request) {
	var req coreTeamActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}
	input := service.CoreTeamInput{Name: req.Name, Role: req.Role, LinkedinURL: req.LinkedinURL}

	var (
		members []*domain.CoreTeamMember
		message string
		err     error
	)

	switch req.Action {
	case "addMember":
		members, err = h.coreTeamService.Add(r.Context(), creds, input)
		message = "Team member added successfully"
	case "updateMember":
		members, err = h.coreTeamService.Update(r.Context(), creds, req.ID, input)
		message = "Team member updated successfully"
	case "deleteMember":
		members, err = h.coreTeamService.Delete(r.Context(), creds, req.MemberID)
		message = "Team member deleted successfully"
	case "reorderMembers":
		members, err = h.coreTeamService.Reorder(r.Context(), creds, req.Order)
		message = "Team members reordered successfully"
	case "resetCoreTeam":
		members, err = h.coreTeamService.Reset(r.Context(), creds)
		message = "Core team reset to empty state"
	default:
		h.handleError(w, domain.ErrInvalidAction)
		return
	}

	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CoreTeamEnvelope{
		Success:  true,
		Message:  message,
		CoreTeam: domainCoreTeamToHTTP(members),
	})
}
