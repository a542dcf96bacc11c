package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewContactRepository(db), mock
}

func TestParseSocialMedia(t *testing.T) {
	t.Run("list stays a list", func(t *testing.T) {
		links := parseSocialMedia(`[{"platform":"twitter","handle":"@iq","url":"https://twitter.com/iq"},{"platform":"instagram","handle":"@iq.gram"}]`)

		require.Len(t, links, 2)
		assert.Equal(t, "twitter", links[0].Platform)
		assert.Equal(t, "https://twitter.com/iq", links[0].URL)
		assert.Equal(t, "instagram", links[1].Platform)
		assert.Empty(t, links[1].URL)
	})

	t.Run("single object normalizes to a one-element list", func(t *testing.T) {
		links := parseSocialMedia(`{"platform":"twitter","handle":"@iq"}`)

		require.Len(t, links, 1)
		assert.Equal(t, "twitter", links[0].Platform)
		assert.Equal(t, "@iq", links[0].Handle)
	})

	t.Run("garbage normalizes to an empty list", func(t *testing.T) {
		assert.Empty(t, parseSocialMedia(`not json at all`))
		assert.NotNil(t, parseSocialMedia(`not json at all`))
	})

	t.Run("empty list round-trips", func(t *testing.T) {
		assert.Empty(t, parseSocialMedia(`[]`))
	})
}

func TestContactRepository_Get(t *testing.T) {
	t.Run("normalizes a stored single object to a list", func(t *testing.T) {
		repo, mock := setupContactRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "email", "discord", "description", "social_media", "created_at", "updated_at"}).
			AddRow(1, "innoquest2025@example.com", "discord.gg/iq", "Reach out!", `{"platform":"twitter","handle":"@iq"}`, now, nil)
		mock.ExpectQuery("SELECT (.+) FROM contact_info").WillReturnRows(rows)

		info, err := repo.Get(context.Background())

		require.NoError(t, err)
		require.Len(t, info.SocialMedia, 1)
		assert.Equal(t, "twitter", info.SocialMedia[0].Platform)
	})

	t.Run("no row yields ErrNotFound", func(t *testing.T) {
		repo, mock := setupContactRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM contact_info").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "discord", "description", "social_media", "created_at", "updated_at"}))

		_, err := repo.Get(context.Background())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestContactRepository_Create(t *testing.T) {
	repo, mock := setupContactRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
	mock.ExpectQuery("INSERT INTO contact_info").
		WithArgs("a@b.c", "discord.gg/iq", "desc", `[{"platform":"twitter","handle":"@iq"}]`).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), &domain.ContactInfo{
		Email:       "a@b.c",
		Discord:     "discord.gg/iq",
		Description: "desc",
		SocialMedia: []domain.SocialMediaLink{{Platform: "twitter", Handle: "@iq"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Update(t *testing.T) {
	repo, mock := setupContactRepo(t)

	mock.ExpectExec("UPDATE contact_info").
		WithArgs(1, "a@b.c", "discord.gg/iq", "desc", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.ContactInfo{
		ID:          1,
		Email:       "a@b.c",
		Discord:     "discord.gg/iq",
		Description: "desc",
		SocialMedia: []domain.SocialMediaLink{},
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
