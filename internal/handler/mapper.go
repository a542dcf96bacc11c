package handler

import (
	"time"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		out = append(out, TeamResponse{
			ID:           team.ID,
			Name:         team.Name,
			ProjectTitle: team.ProjectTitle,
			Status:       string(team.Status),
			SubmittedAt:  team.SubmittedAt.Format("2006-01-02"),
			Members:      team.Members,
		})
	}
	return out
}

func domainPhasesToHTTP(phases []domain.TimelinePhase) []TimelinePhaseResponse {
	out := make([]TimelinePhaseResponse, 0, len(phases))
	for _, phase := range phases {
		out = append(out, TimelinePhaseResponse{
			Phase:       phase.Phase,
			Description: phase.Description,
			Status:      string(phase.Status),
			Progress:    phase.Progress,
		})
	}
	return out
}

func domainCountdownToHTTP(c domain.Countdown) CountdownResponse {
	return CountdownResponse{
		TargetDate:    c.TargetDate,
		TargetTime:    c.TargetTime,
		IsActive:      c.IsActive,
		CustomMessage: c.CustomMessage,
	}
}

func domainCoreTeamToHTTP(members []*domain.CoreTeamMember) []CoreTeamMemberResponse {
	out := make([]CoreTeamMemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, CoreTeamMemberResponse{
			ID:          member.ID,
			Name:        member.Name,
			Role:        member.Role,
			LinkedinURL: member.LinkedinURL,
		})
	}
	return out
}

func domainAnnouncementsToHTTP(announcements []*domain.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp := AnnouncementResponse{
			ID:        a.ID,
			Title:     a.Title,
			Content:   a.Content,
			Priority:  a.Priority,
			IsActive:  a.IsActive,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		}
		if a.UpdatedAt != nil {
			updatedAt := a.UpdatedAt.Format(time.RFC3339)
			resp.UpdatedAt = &updatedAt
		}
		out = append(out, resp)
	}
	return out
}

func domainOrganizersToHTTP(categories []domain.OrganizerCategory) EventOrganizersResponse {
	out := make([]OrganizerCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		members := make([]OrganizerMemberResponse, 0, len(cat.Members))
		for _, member := range cat.Members {
			members = append(members, OrganizerMemberResponse{
				ID:   member.ID,
				Name: member.Name,
				Role: member.Role,
			})
		}
		out = append(out, OrganizerCategoryResponse{
			ID:      cat.ID,
			Name:    cat.Name,
			Color:   cat.Color,
			Members: members,
		})
	}
	return EventOrganizersResponse{Categories: out}
}

func domainContactToHTTP(info *domain.ContactInfo) ContactInfoResponse {
	social := make([]SocialMediaLinkResponse, 0, len(info.SocialMedia))
	for _, link := range info.SocialMedia {
		social = append(social, SocialMediaLinkResponse{
			Platform: link.Platform,
			Handle:   link.Handle,
			URL:      link.URL,
		})
	}
	return ContactInfoResponse{
		Email:       info.Email,
		Discord:     info.Discord,
		SocialMedia: social,
		Description: info.Description,
	}
}
