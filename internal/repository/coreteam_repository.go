package repository

import (
	"context"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type CoreTeamRepository interface {
	Create(ctx context.Context, member *domain.CoreTeamMember) (*domain.CoreTeamMember, error)
	Update(ctx context.Context, member *domain.CoreTeamMember) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*domain.CoreTeamMember, error)
	DeleteAll(ctx context.Context) error
}
