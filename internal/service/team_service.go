package service

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

// TeamInput carries the caller-supplied team fields for add/update. An empty
// Status or Members < 1 on update means "keep the stored value".
type TeamInput struct {
	Name         string
	ProjectTitle string
	Status       string
	Members      int
}

type TeamService interface {
	List(ctx context.Context) ([]*domain.Team, error)
	// Authenticate is the query-parameter auth probe on the list endpoint.
	Authenticate(creds Credentials) error
	Add(ctx context.Context, creds Credentials, input TeamInput) ([]*domain.Team, error)
	Update(ctx context.Context, creds Credentials, id int, input TeamInput) ([]*domain.Team, error)
	Delete(ctx context.Context, creds Credentials, id int) ([]*domain.Team, error)
	ChangePassword(creds Credentials, newPassword string) error
}
