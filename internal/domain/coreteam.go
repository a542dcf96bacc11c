package domain

import "time"

type CoreTeamMember struct {
	ID          int
	Name        string
	Role        string
	LinkedinURL string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
