package postgres

import (
	"context"
	"database/sql"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
)

type coreTeamRepository struct {
	db *sql.DB
}

func NewCoreTeamRepository(db *sql.DB) *coreTeamRepository {
	return &coreTeamRepository{db: db}
}

func (r *coreTeamRepository) Create(ctx context.Context, member *domain.CoreTeamMember) (*domain.CoreTeamMember, error) {
	query := `
		INSERT INTO core_team_members (name, role, linkedin_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	created := *member
	err := r.db.QueryRowContext(ctx, query,
		member.Name,
		member.Role,
		nullString(member.LinkedinURL),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *coreTeamRepository) Update(ctx context.Context, member *domain.CoreTeamMember) error {
	query := `
		UPDATE core_team_members
		SET name = $2, role = $3, linkedin_url = $4, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.Role,
		nullString(member.LinkedinURL),
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

func (r *coreTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM core_team_members WHERE id = $1`, id)
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

// List returns members in insertion order, which is the display order.
func (r *coreTeamRepository) List(ctx context.Context) ([]*domain.CoreTeamMember, error) {
	query := `
		SELECT id, name, role, linkedin_url, created_at, updated_at
		FROM core_team_members
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.CoreTeamMember, 0)
	for rows.Next() {
		member := &domain.CoreTeamMember{}
		var linkedin sql.NullString
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Role,
			&linkedin,
			&member.CreatedAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		if linkedin.Valid {
			member.LinkedinURL = linkedin.String
		}
		if updatedAt.Valid {
			member.UpdatedAt = &updatedAt.Time
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *coreTeamRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM core_team_members`)
	return err
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
