package handler

import (
	"encoding/json"
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/service"
)

func (h *Handler) GetEventOrganizers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, EventOrganizersEnvelope{
		Success:         true,
		EventOrganizers: domainOrganizersToHTTP(h.organizerService.Categories()),
	})
}

func (h *Handler) EventOrganizerAction(w http.ResponseWriter, r *http.Request) {
	var req organizerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badBody(w)
		return
	}
	creds := service.Credentials{Username: req.Username, Password: req.Password}

	var (
		categories []domain.OrganizerCategory
		message    string
		err        error
	)

	switch req.Action {
	case "addMember":
		categories, err = h.organizerService.AddMember(creds, req.CategoryID, req.Name, req.Role)
		message = "Event organizer added successfully"
	case "updateMember":
		categories, err = h.organizerService.UpdateMember(creds, req.CategoryID, req.ID, req.Name, req.Role)
		message = "Event organizer updated successfully"
	case "deleteMember":
		categories, err = h.organizerService.DeleteMember(creds, req.CategoryID, req.MemberID)
		message = "Event organizer deleted successfully"
	case "addCategory":
		categories, err = h.organizerService.AddCategory(creds, req.Name, req.Color)
		message = "Category added successfully"
	case "updateCategory":
		categories, err = h.organizerService.UpdateCategory(creds, req.CategoryID, req.Name, req.Color)
		message = "Category updated successfully"
	case "deleteCategory":
		categories, err = h.organizerService.DeleteCategory(creds, req.CategoryID)
		message = "Category deleted successfully"
	case "resetEventOrganizers":
		categories, err = h.organizerService.Reset(creds)
		message = "Event organizers reset to defaults"
	default:
		h.handleError(w, domain.ErrInvalidAction)
		return
	}

	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, EventOrganizersEnvelope{
		Success:         true,
		Message:         message,
		EventOrganizers: domainOrganizersToHTTP(categories),
	})
}
