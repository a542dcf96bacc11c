package repository

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type ContactRepository interface {
	// Get returns the first (and only) contact info row, or ErrNotFound
	// when nothing has been written yet.
	Get(ctx context.Context) (*domain.ContactInfo, error)
	Create(ctx context.Context, info *domain.ContactInfo) (*domain.ContactInfo, error)
	Update(ctx context.Context, info *domain.ContactInfo) error
}
