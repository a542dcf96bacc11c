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

type contactService struct {
	gate *auth.Gate
	repo repository.ContactRepository
}

func NewContactService(gate *auth.Gate, repo repository.ContactRepository) ContactService {
	return &contactService{gate: gate, repo: repo}
}

func (s *contactService) Get(ctx context.Context) (*domain.ContactInfo, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultContactInfo(), nil
		}
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return info, nil
}

func (s *contactService) Update(ctx context.Context, creds Credentials, input ContactInput) (*domain.ContactInfo, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Discord) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		input.SocialMedia == nil {
		return nil, domain.NewValidationError("All fields are required")
	}

	existing, err := s.repo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get contact info: %w", err)
	}

	info := &domain.ContactInfo{
		Email:       input.Email,
		Discord:     input.Discord,
		Description: input.Description,
		SocialMedia: input.SocialMedia,
	}

	if existing == nil {
		created, err := s.repo.Create(ctx, info)
		if err != nil {
			return nil, fmt.Errorf("create contact info: %w", err)
		}
		return created, nil
	}

	info.ID = existing.ID
	info.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, info); err != nil {
		return nil, fmt.Errorf("update contact info: %w", err)
	}
	return info, nil
}
