package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
)

type announcementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) *announcementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	query := `
		INSERT INTO announcements (title, content, priority, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := *a
	err := r.db.QueryRowContext(ctx, query,
		a.Title,
		a.Content,
		a.Priority,
		a.IsActive,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *announcementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $2, content = $3, priority = $4, is_active = $5, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		a.Content,
		a.Priority,
		a.IsActive,
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

func (r *announcementRepository) GetByID(ctx context.Context, id int) (*domain.Announcement, error) {
	query := `
		SELECT id, title, content, priority, is_active, created_at, updated_at
		FROM announcements
		WHERE id = $1
	`

	a := &domain.Announcement{}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Priority,
		&a.IsActive,
		&a.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if updatedAt.Valid {
		a.UpdatedAt = &updatedAt.Time
	}

	return a, nil
}

func (r *announcementRepository) SetActive(ctx context.Context, id int, isActive bool) error {
	query := `
		UPDATE announcements
		SET is_active = $2, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, isActive)
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

func (r *announcementRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
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

func (r *announcementRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Announcement, error) {
	query := `
		SELECT id, title, content, priority, is_active, created_at, updated_at
		FROM announcements
		ORDER BY priority DESC, created_at DESC
	`
	if activeOnly {
		query = `
		SELECT id, title, content, priority, is_active, created_at, updated_at
		FROM announcements
		WHERE is_active = TRUE
		ORDER BY priority DESC, created_at DESC
	`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := make([]*domain.Announcement, 0)
	for rows.Next() {
		a := &domain.Announcement{}
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Content,
			&a.Priority,
			&a.IsActive,
			&a.CreatedAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			a.UpdatedAt = &updatedAt.Time
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}

func (r *announcementRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM announcements`)
	return err
}
