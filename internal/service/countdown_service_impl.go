package service

import (
	"regexp"

	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/memstore"
)

var (
	// Shape only; "31-02-2025" passes on purpose.
	countdownDateRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	// Hours are zero-padded: "09:00", never "9:00".
	countdownTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

type countdownService struct {
	gate  *auth.Gate
	store *memstore.CountdownStore
}

func NewCountdownService(gate *auth.Gate, store *memstore.CountdownStore) CountdownService {
	return &countdownService{gate: gate, store: store}
}

func (s *countdownService) Get() domain.Countdown {
	return s.store.Get()
}

func (s *countdownService) Update(creds Credentials, update CountdownUpdate) (domain.Countdown, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return domain.Countdown{}, err
	}

	// Validate before touching state so a bad field leaves the record as-is.
	if update.TargetDate != nil && *update.TargetDate != "" && !countdownDateRe.MatchString(*update.TargetDate) {
		return domain.Countdown{}, domain.NewValidationError("Invalid date format. Use DD-MM-YYYY")
	}
	if update.TargetTime != nil && *update.TargetTime != "" && !countdownTimeRe.MatchString(*update.TargetTime) {
		return domain.Countdown{}, domain.NewValidationError("Invalid time format. Use HH:MM")
	}

	countdown := s.store.Get()
	if update.TargetDate != nil && *update.TargetDate != "" {
		countdown.TargetDate = *update.TargetDate
	}
	if update.TargetTime != nil && *update.TargetTime != "" {
		countdown.TargetTime = *update.TargetTime
	}
	if update.IsActive != nil {
		countdown.IsActive = *update.IsActive
	}
	if update.CustomMessage != nil {
		countdown.CustomMessage = *update.CustomMessage
	}
	s.store.Set(countdown)

	return countdown, nil
}

func (s *countdownService) Reset(creds Credentials) (domain.Countdown, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return domain.Countdown{}, err
	}
	return s.store.Reset(), nil
}
