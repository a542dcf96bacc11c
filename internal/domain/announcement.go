package domain

import "time"

// Announcement priorities: 1 = Normal, 2 = High, 3 = Urgent.
const (
	PriorityNormal = 1
	PriorityHigh   = 2
	PriorityUrgent = 3
)

type Announcement struct {
	ID        int
	Title     string
	Content   string
	Priority  int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
