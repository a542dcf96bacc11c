package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
)

type announcementService struct {
	gate *auth.Gate
	repo repository.AnnouncementRepository
}

func NewAnnouncementService(gate *auth.Gate, repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{gate: gate, repo: repo}
}

func (s *announcementService) List(ctx context.Context, activeOnly bool) ([]*domain.Announcement, error) {
	announcements, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

func (s *announcementService) validate(input AnnouncementInput) (*domain.Announcement, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, domain.NewValidationError("Title and content are required")
	}

	priority := input.Priority
	if priority == 0 {
		priority = domain.PriorityNormal
	}
	if priority < domain.PriorityNormal || priority > domain.PriorityUrgent {
		return nil, domain.NewValidationError("Priority must be 1 (Normal), 2 (High) or 3 (Urgent)")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &domain.Announcement{
		Title:    title,
		Content:  content,
		Priority: priority,
		IsActive: isActive,
	}, nil
}

func (s *announcementService) Add(ctx context.Context, creds Credentials, input AnnouncementInput) ([]*domain.Announcement, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	a, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	return s.List(ctx, false)
}

func (s *announcementService) Update(ctx context.Context, creds Credentials, id int, input AnnouncementInput) ([]*domain.Announcement, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	a, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	a.ID = id

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Announcement")
		}
		return nil, fmt.Errorf("update announcement: %w", err)
	}

	return s.List(ctx, false)
}

func (s *announcementService) Delete(ctx context.Context, creds Credentials, id int) ([]*domain.Announcement, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Announcement")
		}
		return nil, fmt.Errorf("delete announcement: %w", err)
	}

	return s.List(ctx, false)
}

func (s *announcementService) Toggle(ctx context.Context, creds Credentials, id int) ([]*domain.Announcement, bool, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, false, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, domain.NewNotFoundError("Announcement")
		}
		return nil, false, fmt.Errorf("load announcement: %w", err)
	}

	next := !current.IsActive
	if err := s.repo.SetActive(ctx, id, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, domain.NewNotFoundError("Announcement")
		}
		return nil, false, fmt.Errorf("toggle announcement: %w", err)
	}

	all, err := s.List(ctx, false)
	if err != nil {
		return nil, false, err
	}
	return all, next, nil
}

func (s *announcementService) Reset(ctx context.Context, creds Credentials) ([]*domain.Announcement, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("reset announcements: %w", err)
	}

	return []*domain.Announcement{}, nil
}
