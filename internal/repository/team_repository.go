package repository

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*domain.Team, error)
}
