package handler

import "encoding/json"

// Every mutating request carries the action discriminator and the admin
// credentials inline; the remaining fields depend on the resource.

type teamPayload struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ProjectTitle string `json:"projectTitle"`
	Status       string `json:"status"`
	Members      int    `json:"members"`
}

type teamActionRequest struct {
	Action      string       `json:"action"`
	Username    string       `json:"username"`
	Password    string       `json:"password"`
	Team        *teamPayload `json:"team"`
	TeamID      int          `json:"teamId"`
	NewPassword string       `json:"newPassword"`
}

type timelineActionRequest struct {
	Action     string  `json:"action"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	PhaseIndex *int    `json:"phaseIndex"`
	Status     *string `json:"status"`
	Progress   *int    `json:"progress"`
}

type countdownActionRequest struct {
	Action        string  `json:"action"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	TargetDate    *string `json:"targetDate"`
	TargetTime    *string `json:"targetTime"`
	IsActive      *bool   `json:"isActive"`
	CustomMessage *string `json:"customMessage"`
}

type coreTeamActionRequest struct {
	Action      string `json:"action"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	LinkedinURL string `json:"linkedinUrl"`
	MemberID    int    `json:"memberId"`
	Order       []int  `json:"order"`
}

type announcementActionRequest struct {
	Action         string `json:"action"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Priority       int    `json:"priority"`
	IsActive       *bool  `json:"isActive"`
	AnnouncementID int    `json:"announcementId"`
}

type organizerActionRequest struct {
	Action     string `json:"action"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	CategoryID string `json:"categoryId"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Color      string `json:"color"`
	MemberID   string `json:"memberId"`
}

type registrationLinkActionRequest struct {
	Action           string `json:"action"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	RegistrationLink string `json:"registrationLink"`
}

type contactActionRequest struct {
	Action      string          `json:"action"`
	Username    string          `json:"username"`
	Password    string          `json:"password"`
	Email       string          `json:"email"`
	Discord     string          `json:"discord"`
	SocialMedia json.RawMessage `json:"socialMedia"`
	Description string          `json:"description"`
}

// Response bodies follow the {success, message?, <resource>} envelope.

type TeamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ProjectTitle string `json:"projectTitle"`
	Status       string `json:"status"`
	SubmittedAt  string `json:"submittedAt"`
	Members      int    `json:"members"`
}

type TeamsEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Teams   []TeamResponse `json:"teams"`
}

type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type TimelinePhaseResponse struct {
	Phase       string `json:"phase"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
}

type TimelineEnvelope struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Phases  []TimelinePhaseResponse `json:"phases"`
}

type CountdownResponse struct {
	TargetDate    string `json:"targetDate"`
	TargetTime    string `json:"targetTime"`
	IsActive      bool   `json:"isActive"`
	CustomMessage string `json:"customMessage"`
}

type CountdownEnvelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Countdown CountdownResponse `json:"countdown"`
}

type CoreTeamMemberResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
}

type CoreTeamEnvelope struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message,omitempty"`
	CoreTeam []CoreTeamMemberResponse `json:"coreTeam"`
}

type AnnouncementResponse struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Priority  int     `json:"priority"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

type AnnouncementsEnvelope struct {
	Success       bool                   `json:"success"`
	Message       string                 `json:"message,omitempty"`
	Announcements []AnnouncementResponse `json:"announcements"`
}

type OrganizerMemberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type OrganizerCategoryResponse struct {
	ID      string                    `json:"id"`
	Name    string                    `json:"name"`
	Color   string                    `json:"color"`
	Members []OrganizerMemberResponse `json:"members"`
}

type EventOrganizersResponse struct {
	Categories []OrganizerCategoryResponse `json:"categories"`
}

type EventOrganizersEnvelope struct {
	Success         bool                    `json:"success"`
	Message         string                  `json:"message,omitempty"`
	EventOrganizers EventOrganizersResponse `json:"eventOrganizers"`
}

type RegistrationLinkEnvelope struct {
	Success          bool   `json:"success"`
	Message          string `json:"message,omitempty"`
	RegistrationLink string `json:"registrationLink"`
}

type SocialMediaLinkResponse struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	URL      string `json:"url,omitempty"`
}

type ContactInfoResponse struct {
	Email       string                    `json:"email"`
	Discord     string                    `json:"discord"`
	SocialMedia []SocialMediaLinkResponse `json:"socialMedia"`
	Description string                    `json:"description"`
}

type ContactInfoEnvelope struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	ContactInfo ContactInfoResponse `json:"contactInfo"`
}
