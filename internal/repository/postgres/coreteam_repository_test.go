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

func setupCoreTeamRepo(t *testing.T) (*coreTeamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewCoreTeamRepository(db), mock
}

func TestCoreTeamRepository_Create(t *testing.T) {
	t.Run("stores the linkedin url when present", func(t *testing.T) {
		repo, mock := setupCoreTeamRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, now)
		mock.ExpectQuery("INSERT INTO core_team_members").
			WithArgs("Jane Doe", "Lead Organizer", sqlmock.AnyArg()).
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), &domain.CoreTeamMember{
			Name:        "Jane Doe",
			Role:        "Lead Organizer",
			LinkedinURL: "https://linkedin.com/in/jane-doe",
		})

		require.NoError(t, err)
		assert.Equal(t, 4, created.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCoreTeamRepository_List(t *testing.T) {
	repo, mock := setupCoreTeamRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "role", "linkedin_url", "created_at", "updated_at"}).
		AddRow(1, "Jane Doe", "Lead Organizer", "https://linkedin.com/in/jane-doe", now.Add(-time.Hour), nil).
		AddRow(2, "John Roe", "Sponsorship", nil, now, nil)
	mock.ExpectQuery("SELECT (.+) FROM core_team_members").WillReturnRows(rows)

	members, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "https://linkedin.com/in/jane-doe", members[0].LinkedinURL)
	assert.Empty(t, members[1].LinkedinURL, "NULL linkedin_url maps to empty string")
}

func TestCoreTeamRepository_Delete(t *testing.T) {
	repo, mock := setupCoreTeamRepo(t)

	mock.ExpectExec("DELETE FROM core_team_members").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 42), repository.ErrNotFound)
}

func TestCoreTeamRepository_DeleteAll(t *testing.T) {
	repo, mock := setupCoreTeamRepo(t)

	mock.ExpectExec("DELETE FROM core_team_members").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteAll(context.Background()))
}
