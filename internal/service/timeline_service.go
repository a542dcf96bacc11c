package service

import (
	"github.com/innoquest/hackathon-backend/internal/domain"
)

// PhaseUpdate carries the caller-supplied phase mutation; nil fields are
// left untouched.
type PhaseUpdate struct {
	Status   *domain.PhaseStatus
	Progress *int
}

type TimelineService interface {
	Phases() []domain.TimelinePhase
	UpdatePhase(creds Credentials, phaseIndex int, update PhaseUpdate) ([]domain.TimelinePhase, error)
	Reset(creds Credentials) ([]domain.TimelinePhase, error)
}
