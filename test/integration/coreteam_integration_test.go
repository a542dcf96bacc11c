//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository/postgres"
	"github.com/innoquest/hackathon-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreTeamLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCoreTeamService(newGate(), postgres.NewCoreTeamRepository(db))
	ctx := context.Background()

	members, err := svc.Add(ctx, adminCreds(), service.CoreTeamInput{
		Name:        "Jane Doe",
		Role:        "Lead Organizer",
		LinkedinURL: "https://linkedin.com/in/jane-doe",
	})
	require.NoError(t, err)
	require.Len(t, members, 1)

	members, err = svc.Add(ctx, adminCreds(), service.CoreTeamInput{Name: "John Roe", Role: "Mentor"})
	require.NoError(t, err)
	require.Len(t, members, 2)
	// Roster keeps insertion order.
	assert.Equal(t, "Jane Doe", members[0].Name)
	assert.Equal(t, "John Roe", members[1].Name)
	assert.Empty(t, members[1].LinkedinURL)

	members, err = svc.Update(ctx, adminCreds(), members[1].ID, service.CoreTeamInput{
		Name: "John Roe",
		Role: "Senior Mentor",
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Mentor", members[1].Role)

	members, err = svc.Delete(ctx, adminCreds(), members[0].ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "John Roe", members[0].Name)

	members, err = svc.Reset(ctx, adminCreds())
	require.NoError(t, err)
	assert.Empty(t, members)

	_, err = svc.Delete(ctx, adminCreds(), 12345)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
