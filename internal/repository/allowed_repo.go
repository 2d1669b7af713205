package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deboragomesrs/kidsafe-browser/internal/model"
)

type AllowedRepo struct {
	pool *pgxpool.Pool
}

func NewAllowedRepo(pool *pgxpool.Pool) *AllowedRepo {
	return &AllowedRepo{pool: pool}
}

// EnsureSchema creates the allowed_content table when it does not exist yet.
func (r *AllowedRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS allowed_content (
			id             UUID PRIMARY KEY,
			type           VARCHAR(10) NOT NULL,
			content_id     VARCHAR(64) NOT NULL,
			name           TEXT NOT NULL,
			url            TEXT NOT NULL DEFAULT '',
			thumbnail_url  TEXT NOT NULL DEFAULT '',
			shorts_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

// List returns all allowed-content entries, oldest first.
func (r *AllowedRepo) List(ctx context.Context) ([]model.AllowedContent, error) {
	query := `
		SELECT id, type, content_id, name, url, thumbnail_url, shorts_enabled, created_at
		FROM allowed_content
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.AllowedContent
	for rows.Next() {
		var e model.AllowedContent
		err := rows.Scan(&e.ID, &e.Type, &e.ContentID, &e.Name, &e.URL,
			&e.ThumbnailURL, &e.ShortsEnabled, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Insert adds one allowed-content entry.
func (r *AllowedRepo) Insert(ctx context.Context, e model.AllowedContent) error {
	query := `
		INSERT INTO allowed_content (id, type, content_id, name, url, thumbnail_url, shorts_enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Type, e.ContentID, e.Name, e.URL, e.ThumbnailURL, e.ShortsEnabled, e.CreatedAt)
	return err
}

// Delete removes an entry by ID. Returns the number of rows removed.
func (r *AllowedRepo) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM allowed_content WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateMetadata refreshes the display name and thumbnail of an entry.
// Returns the number of rows changed.
func (r *AllowedRepo) UpdateMetadata(ctx context.Context, id, name, thumbnailURL string) (int64, error) {
	query := `
		UPDATE allowed_content
		SET name = $2, thumbnail_url = $3
		WHERE id = $1 AND (name <> $2 OR thumbnail_url <> $3)`

	tag, err := r.pool.Exec(ctx, query, id, name, thumbnailURL)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ToggleShorts flips the shorts_enabled gate for an entry and returns the
// new value.
func (r *AllowedRepo) ToggleShorts(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE allowed_content
		SET shorts_enabled = NOT shorts_enabled
		WHERE id = $1
		RETURNING shorts_enabled`

	var enabled bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&enabled)
	return enabled, err
}
