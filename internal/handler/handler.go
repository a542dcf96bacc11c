package handler

import (
	"github.com/innoquest/hackathon-backend/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	log                 *zap.Logger
	teamService         service.TeamService
	timelineService     service.TimelineService
	countdownService    service.CountdownService
	coreTeamService     service.CoreTeamService
	announcementService service.AnnouncementService
	organizerService    service.OrganizerService
	registrationService service.RegistrationLinkService
	contactService      service.ContactService
}

func NewHandler(
	log *zap.Logger,
	teamService service.TeamService,
	timelineService service.TimelineService,
	countdownService service.CountdownService,
	coreTeamService service.CoreTeamService,
	announcementService service.AnnouncementService,
	organizerService service.OrganizerService,
	registrationService service.RegistrationLinkService,
	contactService service.ContactService,
) *Handler {
	return &Handler{
		log:                 log,
		teamService:         teamService,
		timelineService:     timelineService,
		countdownService:    countdownService,
		coreTeamService:     coreTeamService,
		announcementService: announcementService,
		organizerService:    organizerService,
		registrationService: registrationService,
		contactService:      contactService,
	}
}
