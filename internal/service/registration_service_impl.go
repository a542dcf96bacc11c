package service

import (
	"net/url"

	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/memstore"
)

type registrationLinkService struct {
	gate  *auth.Gate
	store *memstore.RegistrationLinkStore
}

func NewRegistrationLinkService(gate *auth.Gate, store *memstore.RegistrationLinkStore) RegistrationLinkService {
	return &registrationLinkService{gate: gate, store: store}
}

func (s *registrationLinkService) Get() string {
	return s.store.Get()
}

func (s *registrationLinkService) Update(creds Credentials, link string) (string, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return "", err
	}
	if link == "" {
		return "", domain.NewValidationError("Valid registration link is required")
	}

	// Any absolute URL passes; there is no scheme whitelist.
	parsed, err := url.Parse(link)
	if err != nil || parsed.Scheme == "" {
		return "", domain.NewValidationError("Please provide a valid URL")
	}

	s.store.Set(link)
	return link, nil
}

func (s *registrationLinkService) Reset(creds Credentials) (string, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return "", err
	}
	return s.store.Reset(), nil
}
