package service

import (
	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/memstore"
)

type timelineService struct {
	gate  *auth.Gate
	store *memstore.TimelineStore
}

func NewTimelineService(gate *auth.Gate, store *memstore.TimelineStore) TimelineService {
	return &timelineService{gate: gate, store: store}
}

func (s *timelineService) Phases() []domain.TimelinePhase {
	return s.store.Snapshot()
}

func (s *timelineService) UpdatePhase(creds Credentials, phaseIndex int, update PhaseUpdate) ([]domain.TimelinePhase, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	if phaseIndex < 0 || phaseIndex >= s.store.Len() {
		return nil, domain.NewValidationError("Invalid phase index")
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, domain.NewValidationError("Invalid phase status")
	}

	return s.store.UpdatePhase(phaseIndex, update.Status, update.Progress), nil
}

func (s *timelineService) Reset(creds Credentials) ([]domain.TimelinePhase, error) {
	if err := s.gate.Require(creds.Username, creds.Password); err != nil {
		return nil, err
	}
	return s.store.Reset(), nil
}
