package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/innoquest/hackathon-backend/internal/domain"
	"github.com/innoquest/hackathon-backend/internal/repository"
)

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *contactRepository {
	return &contactRepository{db: db}
}

type socialMediaRecord struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	URL      string `json:"url,omitempty"`
}

// parseSocialMedia normalizes whatever is stored in the social_media column
// into a list. Historical rows may hold a single object instead of a list;
// anything unparseable normalizes to an empty list rather than failing the
// whole read.
func parseSocialMedia(raw string) []domain.SocialMediaLink {
	var records []socialMediaRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		var single socialMediaRecord
		if err := json.Unmarshal([]byte(raw), &single); err != nil {
			return []domain.SocialMediaLink{}
		}
		records = []socialMediaRecord{single}
	}

	links := make([]domain.SocialMediaLink, 0, len(records))
	for _, rec := range records {
		links = append(links, domain.SocialMediaLink{
			Platform: rec.Platform,
			Handle:   rec.Handle,
			URL:      rec.URL,
		})
	}
	return links
}

func marshalSocialMedia(links []domain.SocialMediaLink) (string, error) {
	records := make([]socialMediaRecord, 0, len(links))
	for _, link := range links {
		records = append(records, socialMediaRecord{
			Platform: link.Platform,
			Handle:   link.Handle,
			URL:      link.URL,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *contactRepository) Get(ctx context.Context) (*domain.ContactInfo, error) {
	query := `
		SELECT id, email, discord, description, social_media, created_at, updated_at
		FROM contact_info
		ORDER BY id ASC
		LIMIT 1
	`

	info := &domain.ContactInfo{}
	var rawSocial string
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query).Scan(
		&info.ID,
		&info.Email,
		&info.Discord,
		&info.Description,
		&rawSocial,
		&info.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	info.SocialMedia = parseSocialMedia(rawSocial)
	if updatedAt.Valid {
		info.UpdatedAt = &updatedAt.Time
	}

	return info, nil
}

func (r *contactRepository) Create(ctx context.Context, info *domain.ContactInfo) (*domain.ContactInfo, error) {
	rawSocial, err := marshalSocialMedia(info.SocialMedia)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO contact_info (email, discord, description, social_media)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := *info
	err = r.db.QueryRowContext(ctx, query,
		info.Email,
		info.Discord,
		info.Description,
		rawSocial,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *contactRepository) Update(ctx context.Context, info *domain.ContactInfo) error {
	rawSocial, err := marshalSocialMedia(info.SocialMedia)
	if err != nil {
		return err
	}

	query := `
		UPDATE contact_info
		SET email = $2, discord = $3, description = $4, social_media = $5, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		info.ID,
		info.Email,
		info.Discord,
		info.Description,
		rawSocial,
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
