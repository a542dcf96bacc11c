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

func TestContactInfoUpsert(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewContactService(newGate(), postgres.NewContactRepository(db))
	ctx := context.Background()

	// Before any write the default record is served.
	info, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultContactInfo().Email, info.Email)

	input := service.ContactInput{
		Email:       "hello@innoquest.dev",
		Discord:     "https://discord.gg/innoquest",
		Description: "Reach the organizing team any time.",
		SocialMedia: []domain.SocialMediaLink{
			{Platform: "twitter", Handle: "@innoquest", URL: "https://twitter.com/innoquest"},
			{Platform: "instagram", Handle: "@innoquest.official"},
		},
	}

	created, err := svc.Update(ctx, adminCreds(), input)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// The stored record round-trips, social media list included.
	info, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello@innoquest.dev", info.Email)
	require.Len(t, info.SocialMedia, 2)
	assert.Equal(t, "instagram", info.SocialMedia[1].Platform)

	// A second write updates the same row instead of creating another one.
	input.Description = "Updated description"
	updated, err := svc.Update(ctx, adminCreds(), input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	info, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, info.ID)
	assert.Equal(t, "Updated description", info.Description)
}
