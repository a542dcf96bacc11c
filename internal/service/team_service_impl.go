package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
)

type teamService struct {
	gate     *auth.Gate
	teamRepo repository.TeamRepository
}

func NewTeamService(gate *auth.Gate, teamRepo repository.TeamRepository) TeamService {
	return &teamService{gate: gate, teamRepo: teamRepo}
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) Authenticate(creds Credentials) error {
	return s.gate.Require(creds.Username, creds.Password)
}

func (s *teamService) Add(ctx context.Context, creds Credentials, input TeamInput) ([]*domain.Team, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.ProjectTitle) == "" {
		return nil, domain.NewValidationError("Team name and project title are required")
	}

	status := domain.TeamStatusPending
	if input.Status != "" {
		status = domain.TeamStatus(input.Status)
		if !status.Valid() {
			return nil, domain.NewValidationError("Invalid team status")
		}
	}

	members := input.Members
	if members < 1 {
		members = 1
	}

	team := &domain.Team{
		Name:         input.Name,
		ProjectTitle: input.ProjectTitle,
		Status:       status,
		SubmittedAt:  time.Now().Truncate(24 * time.Hour),
		Members:      members,
	}

	if _, err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	return s.List(ctx)
}

func (s *teamService) Update(ctx context.Context, creds Credentials, id int, input TeamInput) ([]*domain.Team, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.ProjectTitle) == "" {
		return nil, domain.NewValidationError("Team name and project title are required")
	}
	if input.Status != "" && !domain.TeamStatus(input.Status).Valid() {
		return nil, domain.NewValidationError("Invalid team status")
	}

	team := &domain.Team{
		ID:           id,
		Name:         input.Name,
		ProjectTitle: input.ProjectTitle,
		Status:       domain.TeamStatus(input.Status),
		Members:      input.Members,
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Team")
		}
		return nil, fmt.Errorf("update team: %w", err)
	}

	return s.List(ctx)
}

func (s *teamService) Delete(ctx context.Context, creds Credentials, id int) ([]*domain.Team, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Team")
		}
		return nil, fmt.Errorf("delete team: %w", err)
	}

	return s.List(ctx)
}

func (s *teamService) ChangePassword(creds Credentials, newPassword string) error {
	return s.gate.ChangePassword(creds.Username, creds.Password, newPassword)
}
