// Package memstore holds the process-local resources: timeline, countdown,
// event organizers and the registration link. None of this state is
// persisted; every store reseeds on process start and concurrent writers are
// last-write-wins by design.
package memstore

import (
	"sync"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type TimelineStore struct {
	mu     sync.Mutex
	phases []domain.TimelinePhase
}

func NewTimelineStore() *TimelineStore {
	return &TimelineStore{phases: domain.SeedTimeline()}
}

// Snapshot returns a copy; callers never see the live slice.
func (s *TimelineStore) Snapshot() []domain.TimelinePhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TimelinePhase, len(s.phases))
	copy(out, s.phases)
	return out
}

// UpdatePhase applies the cascade rule under the lock and returns the
// resulting sequence.
func (s *TimelineStore) UpdatePhase(i int, status *domain.PhaseStatus, progress *int) []domain.TimelinePhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	domain.ApplyPhaseUpdate(s.phases, i, status, progress)
	out := make([]domain.TimelinePhase, len(s.phases))
	copy(out, s.phases)
	return out
}

func (s *TimelineStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.phases)
}

func (s *TimelineStore) Reset() []domain.TimelinePhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = domain.SeedTimeline()
	out := make([]domain.TimelinePhase, len(s.phases))
	copy(out, s.phases)
	return out
}

type CountdownStore struct {
	mu        sync.Mutex
	countdown domain.Countdown
}

func NewCountdownStore() *CountdownStore {
	return &CountdownStore{countdown: domain.SeedCountdown()}
}

func (s *CountdownStore) Get() domain.Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdown
}

func (s *CountdownStore) Set(c domain.Countdown) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countdown = c
}

func (s *CountdownStore) Reset() domain.Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countdown = domain.SeedCountdown()
	return s.countdown
}

type OrganizerStore struct {
	mu         sync.Mutex
	categories []domain.OrganizerCategory
}

func NewOrganizerStore() *OrganizerStore {
	return &OrganizerStore{categories: domain.SeedOrganizers()}
}

func (s *OrganizerStore) Snapshot() []domain.OrganizerCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCategories(s.categories)
}

// Replace swaps the whole tree. Services mutate a snapshot and write it back,
// so two racing admins get last-write-wins.
func (s *OrganizerStore) Replace(categories []domain.OrganizerCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = copyCategories(categories)
}

func (s *OrganizerStore) Reset() []domain.OrganizerCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = domain.SeedOrganizers()
	return copyCategories(s.categories)
}

func copyCategories(src []domain.OrganizerCategory) []domain.OrganizerCategory {
	out := make([]domain.OrganizerCategory, len(src))
	for i, cat := range src {
		members := make([]domain.OrganizerMember, len(cat.Members))
		copy(members, cat.Members)
		cat.Members = members
		out[i] = cat
	}
	return out
}

type RegistrationLinkStore struct {
	mu   sync.Mutex
	link string
}

func NewRegistrationLinkStore() *RegistrationLinkStore {
	return &RegistrationLinkStore{link: domain.DefaultRegistrationLink}
}

func (s *RegistrationLinkStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.link
}

func (s *RegistrationLinkStore) Set(link string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link = link
}

func (s *RegistrationLinkStore) Reset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link = domain.DefaultRegistrationLink
	return s.link
}
