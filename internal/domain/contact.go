package domain

import "time"

type SocialMediaLink struct {
	Platform string
	Handle   string
	URL      string
}

type ContactInfo struct {
	ID          int
	Email       string
	Discord     string
	Description string
	SocialMedia []SocialMediaLink
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// DefaultContactInfo is returned when the singleton row does not exist yet.
func DefaultContactInfo() *ContactInfo {
	return &ContactInfo{
		Email:   "innoquest2025@example.com",
		Discord: "Join our community server",
		SocialMedia: []SocialMediaLink{
			{
				Platform: "twitter",
				Handle:   "@InnoQuest2025",
				URL:      "https://twitter.com/InnoQuest2025",
			},
		},
		Description: "Have questions about InnoQuest 2025? Reach out to our team and we'll be happy to help you on your journey to innovation!",
	}
}
