package postgres

import (
	"context"
	"database/sql"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	query := `
		INSERT INTO teams (name, project_title, status, submitted_at, members)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	created := *team
	err := r.db.QueryRowContext(ctx, query,
		team.Name,
		team.ProjectTitle,
		string(team.Status),
		team.SubmittedAt,
		team.Members,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	// An empty status or members < 1 means the caller did not supply the
	// field, so the stored value is kept.
	query := `
		UPDATE teams
		SET name = $2,
		    project_title = $3,
		    status = COALESCE(NULLIF($4, ''), status),
		    members = CASE WHEN $5 >= 1 THEN $5 ELSE members END,
		    updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		team.ID,
		team.Name,
		team.ProjectTitle,
		string(team.Status),
		team.Members,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT id, name, project_title, status, submitted_at, members, created_at, updated_at
		FROM teams
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		var status string
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.ProjectTitle,
			&status,
			&team.SubmittedAt,
			&team.Members,
			&team.CreatedAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		team.Status = domain.TeamStatus(status)
		if updatedAt.Valid {
			team.UpdatedAt = &updatedAt.Time
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}
