//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository/postgres"
	"github.com/innoquest/hackathon-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminCreds() service.Credentials {
	return service.Credentials{Username: "innoquest", Password: "innoquest2025"}
}

func newGate() *auth.Gate {
	return auth.NewGate("innoquest", "innoquest2025")
}

func TestTeamLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewTeamService(newGate(), postgres.NewTeamRepository(db))
	ctx := context.Background()

	teams, err := svc.Add(ctx, adminCreds(), service.TeamInput{
		Name:         "Byte Builders",
		ProjectTitle: "Smart Campus",
		Members:      4,
	})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	created := teams[0]
	assert.Equal(t, domain.TeamStatusPending, created.Status)
	assert.Equal(t, 4, created.Members)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	teams, err = svc.Update(ctx, adminCreds(), created.ID, service.TeamInput{
		Name:         "Byte Builders",
		ProjectTitle: "Smart Campus v2",
		Status:       "approved",
	})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Smart Campus v2", teams[0].ProjectTitle)
	assert.Equal(t, domain.TeamStatusApproved, teams[0].Status)
	// Members was omitted, so the stored value survives.
	assert.Equal(t, 4, teams[0].Members)

	teams, err = svc.Delete(ctx, adminCreds(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, teams)

	_, err = svc.Delete(ctx, adminCreds(), created.ID)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestTeamListOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewTeamService(newGate(), postgres.NewTeamRepository(db))
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := svc.Add(ctx, adminCreds(), service.TeamInput{Name: name, ProjectTitle: name + " project"})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	teams, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	// Newest first.
	assert.Equal(t, "Gamma", teams[0].Name)
	assert.Equal(t, "Alpha", teams[2].Name)
}
