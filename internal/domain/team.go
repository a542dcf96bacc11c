package domain

import "time"

type TeamStatus string

const (
	TeamStatusPending     TeamStatus = "pending"
	TeamStatusUnderReview TeamStatus = "under-review"
	TeamStatusApproved    TeamStatus = "approved"
	TeamStatusRejected    TeamStatus = "rejected"
)

func (s TeamStatus) Valid() bool {
	switch s {
	case TeamStatusPending, TeamStatusUnderReview, TeamStatusApproved, TeamStatusRejected:
		return true
	}
	return false
}

type Team struct {
	ID           int
	Name         string
	ProjectTitle string
	Status       TeamStatus
	SubmittedAt  time.Time
	Members      int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
