package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
)

// linkedinProfileRe accepts LinkedIn profile URLs: http(s), optional www,
// /in/<slug>, then optionally more path segments or a query-like suffix.
// Company pages and anything off linkedin.com are rejected.
var linkedinProfileRe = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+([/?][a-zA-Z0-9/_?&=-]*)?$`)

// ValidLinkedinURL reports whether url is empty (the field is optional) or
// shaped like a LinkedIn profile URL.
func ValidLinkedinURL(url string) bool {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return true
	}
	return linkedinProfileRe.MatchString(trimmed)
}

type coreTeamService struct {
	gate *auth.Gate
	repo repository.CoreTeamRepository
}

func NewCoreTeamService(gate *auth.Gate, repo repository.CoreTeamRepository) CoreTeamService {
	return &coreTeamService{gate: gate, repo: repo}
}

func (s *coreTeamService) List(ctx context.Context) ([]*domain.CoreTeamMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list core team: %w", err)
	}
	return members, nil
}

func (s *coreTeamService) validate(input CoreTeamInput) (*domain.CoreTeamMember, error) {
	name := strings.TrimSpace(input.Name)
	role := strings.TrimSpace(input.Role)
	if name == "" || role == "" {
		return nil, domain.NewValidationError("Name and role are required")
	}
	linkedin := strings.TrimSpace(input.LinkedinURL)
	if !ValidLinkedinURL(linkedin) {
		return nil, domain.NewValidationError("Please enter a valid LinkedIn profile URL (e.g., https://linkedin.com/in/username)")
	}
	return &domain.CoreTeamMember{Name: name, Role: role, LinkedinURL: linkedin}, nil
}

func (s *coreTeamService) Add(ctx context.Context, creds Credentials, input CoreTeamInput) ([]*domain.CoreTeamMember, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	member, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create core team member: %w", err)
	}

	return s.List(ctx)
}

func (s *coreTeamService) Update(ctx context.Context, creds Credentials, id int, input CoreTeamInput) ([]*domain.CoreTeamMember, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	member, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	member.ID = id

	if err := s.repo.Update(ctx, member); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Team member")
		}
		return nil, fmt.Errorf("update core team member: %w", err)
	}

	return s.List(ctx)
}

func (s *coreTeamService) Delete(ctx context.Context, creds Credentials, id int) ([]*domain.CoreTeamMember, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Team member")
		}
		return nil, fmt.Errorf("delete core team member: %w", err)
	}

	return s.List(ctx)
}

func (s *coreTeamService) Reorder(ctx context.Context, creds Credentials, order []int) ([]*domain.CoreTeamMember, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewValidationError("Valid order array is required")
	}

	// Creation order is authoritative server-side; the request order is
	// acknowledged but not stored.
	return s.List(ctx)
}

func (s *coreTeamService) Reset(ctx context.Context, creds Credentials) ([]*domain.CoreTeamMember, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("reset core team: %w", err)
	}

	return []*domain.CoreTeamMember{}, nil
}
