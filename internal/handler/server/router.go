package server

import (
	"net/http"

	"github.com/innoquest/hackathon-backend/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /api/teams", h.ListTeams)
	mux.HandleFunc("POST /api/teams", h.TeamAction)
	mux.HandleFunc("GET /api/timeline", h.GetTimeline)
	mux.HandleFunc("POST /api/timeline", h.TimelineAction)
	mux.HandleFunc("GET /api/countdown", h.GetCountdown)
	mux.HandleFunc("POST /api/countdown", h.CountdownAction)
	mux.HandleFunc("GET /api/core-team", h.GetCoreTeam)
	mux.HandleFunc("POST /api/core-team", h.CoreTeamAction)
	mux.HandleFunc("GET /api/announcements", h.GetAnnouncements)
	mux.HandleFunc("POST /api/announcements", h.AnnouncementAction)
	mux.HandleFunc("GET /api/event-organizers", h.GetEventOrganizers)
	mux.HandleFunc("POST /api/event-organizers", h.EventOrganizerAction)
	mux.HandleFunc("GET /api/registration-link", h.GetRegistrationLink)
	mux.HandleFunc("POST /api/registration-link", h.RegistrationLinkAction)
	mux.HandleFunc("GET /api/contact-us", h.GetContactInfo)
	mux.HandleFunc("POST /api/contact-us", h.ContactAction)
}
