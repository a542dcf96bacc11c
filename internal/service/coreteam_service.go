package service

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type CoreTeamInput struct {
	Name        string
	Role        string
	LinkedinURL string
}

type CoreTeamService interface {
	List(ctx context.Context) ([]*domain.CoreTeamMember, error)
	Add(ctx context.Context, creds Credentials, input CoreTeamInput) ([]*domain.CoreTeamMember, error)
	Update(ctx context.Context, creds Credentials, id int, input CoreTeamInput) ([]*domain.CoreTeamMember, error)
	Delete(ctx context.Context, creds Credentials, id int) ([]*domain.CoreTeamMember, error)
	// Reorder is an authenticated no-op: the store keeps insertion order and
	// the admin UI handles display ordering on its own.
	Reorder(ctx context.Context, creds Credentials, order []int) ([]*domain.CoreTeamMember, error)
	Reset(ctx context.Context, creds Credentials) ([]*domain.CoreTeamMember, error)
}
