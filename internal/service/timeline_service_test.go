package service

import (
	"testing"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimelineService() TimelineService {
	return NewTimelineService(testGate(), memstore.NewTimelineStore())
}

func TestTimelineService_UpdatePhase(t *testing.T) {
	t.Run("requires valid credentials", func(t *testing.T) {
		svc := newTimelineService()

		status := domain.PhaseCompleted
		_, err := svc.UpdatePhase(Credentials{Username: "innoquest", Password: "bad"}, 0, PhaseUpdate{Status: &status})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rejects out-of-range phase index", func(t *testing.T) {
		svc := newTimelineService()

		status := domain.PhaseCompleted
		for _, idx := range []int{-1, 5, 100} {
			_, err := svc.UpdatePhase(adminCreds(), idx, PhaseUpdate{Status: &status})
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION", domainErr.Code)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := newTimelineService()

		status := domain.PhaseStatus("finished")
		_, err := svc.UpdatePhase(adminCreds(), 0, PhaseUpdate{Status: &status})

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
	})

	t.Run("completing a phase promotes the next upcoming one", func(t *testing.T) {
		svc := newTimelineService()

		status := domain.PhaseCompleted
		phases, err := svc.UpdatePhase(adminCreds(), 0, PhaseUpdate{Status: &status})

		require.NoError(t, err)
		require.Len(t, phases, 5)
		assert.Equal(t, domain.PhaseCompleted, phases[0].Status)
		// The promotion only fires on an upcoming successor, and only the
		// immediate one.
		assert.Equal(t, domain.PhaseCurrent, phases[1].Status)
		assert.Equal(t, domain.PhaseUpcoming, phases[2].Status)

		phases, err = svc.UpdatePhase(adminCreds(), 1, PhaseUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseCompleted, phases[1].Status)
		assert.Equal(t, domain.PhaseCurrent, phases[2].Status)
	})

	t.Run("marking a later phase current rewrites both sides", func(t *testing.T) {
		svc := newTimelineService()

		status := domain.PhaseCurrent
		phases, err := svc.UpdatePhase(adminCreds(), 3, PhaseUpdate{Status: &status})

		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			assert.Equal(t, domain.PhaseCompleted, phases[i].Status)
			assert.Equal(t, 100, phases[i].Progress)
		}
		assert.Equal(t, domain.PhaseCurrent, phases[3].Status)
		assert.Equal(t, domain.PhaseUpcoming, phases[4].Status)
	})

	t.Run("progress is clamped to 0..100", func(t *testing.T) {
		svc := newTimelineService()

		progress := 250
		phases, err := svc.UpdatePhase(adminCreds(), 1, PhaseUpdate{Progress: &progress})
		require.NoError(t, err)
		assert.Equal(t, 100, phases[1].Progress)

		progress = -10
		phases, err = svc.UpdatePhase(adminCreds(), 1, PhaseUpdate{Progress: &progress})
		require.NoError(t, err)
		assert.Equal(t, 0, phases[1].Progress)
	})
}

func TestTimelineService_Reset(t *testing.T) {
	svc := newTimelineService()

	status := domain.PhaseCompleted
	_, err := svc.UpdatePhase(adminCreds(), 4, PhaseUpdate{Status: &status})
	require.NoError(t, err)

	phases, err := svc.Reset(adminCreds())
	require.NoError(t, err)
	assert.Equal(t, domain.SeedTimeline(), phases)

	_, err = svc.Reset(Credentials{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
