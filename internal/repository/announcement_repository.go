package repository

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) error
	GetByID(ctx context.Context, id int) (*domain.Announcement, error)
	SetActive(ctx context.Context, id int, isActive bool) error
	Delete(ctx context.Context, id int) error
	// List returns every announcement ordered by priority DESC then
	// created_at DESC; activeOnly restricts it to the public view.
	List(ctx context.Context, activeOnly bool) ([]*domain.Announcement, error)
	DeleteAll(ctx context.Context) error
}
