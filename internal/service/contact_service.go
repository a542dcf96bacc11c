package service

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type ContactInput struct {
	Email       string
	Discord     string
	Description string
	SocialMedia []domain.SocialMediaLink
}

type ContactService interface {
	// Get returns the stored record, or the fixed default when nothing has
	// been written yet. SocialMedia is always a list on the way out.
	Get(ctx context.Context) (*domain.ContactInfo, error)
	// Update upserts the singleton: first write creates the row, later
	// writes update it in place.
	Update(ctx context.Context, creds Credentials, input ContactInput) (*domain.ContactInfo, error)
}
