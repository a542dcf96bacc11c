package service

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

// AnnouncementInput carries caller-supplied announcement fields. Priority 0
// defaults to Normal; a nil IsActive defaults to true ("not explicitly
// false").
type AnnouncementInput struct {
	Title    string
	Content  string
	Priority int
	IsActive *bool
}

type AnnouncementService interface {
	// List returns announcements ordered by priority then recency;
	// activeOnly is the public view.
	List(ctx context.Context, activeOnly bool) ([]*domain.Announcement, error)
	Add(ctx context.Context, creds Credentials, input AnnouncementInput) ([]*domain.Announcement, error)
	Update(ctx context.Context, creds Credentials, id int, input AnnouncementInput) ([]*domain.Announcement, error)
	Delete(ctx context.Context, creds Credentials, id int) ([]*domain.Announcement, error)
	// Toggle flips isActive for one announcement and returns the full
	// re-sorted collection plus the resulting active state.
	Toggle(ctx context.Context, creds Credentials, id int) ([]*domain.Announcement, bool, error)
	Reset(ctx context.Context, creds Credentials) ([]*domain.Announcement, error)
}
