package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ParentRepo stores the single parent profile: the salted, iterated hash of
// the parent PIN. There is one row per installation.
type ParentRepo struct {
	pool *pgxpool.Pool
}

func NewParentRepo(pool *pgxpool.Pool) *ParentRepo {
	return &ParentRepo{pool: pool}
}

// EnsureSchema creates the parent_profile table when it does not exist yet.
func (r *ParentRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS parent_profile (
			id         SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			pin_hash   CHAR(64) NOT NULL,
			pin_salt   VARCHAR(64) NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

// SavePIN upserts the stored PIN hash and salt.
func (r *ParentRepo) SavePIN(ctx context.Context, pinHash, pinSalt string) error {
	query := `
		INSERT INTO parent_profile (id, pin_hash, pin_salt, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET pin_hash = EXCLUDED.pin_hash,
		    pin_salt = EXCLUDED.pin_salt,
		    updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, pinHash, pinSalt)
	return err
}

// LoadPIN returns the stored hash and salt. pgx.ErrNoRows when no PIN is set.
func (r *ParentRepo) LoadPIN(ctx context.Context) (pinHash, pinSalt string, err error) {
	query := `SELECT pin_hash, pin_salt FROM parent_profile WHERE id = 1`
	err = r.pool.QueryRow(ctx, query).Scan(&pinHash, &pinSalt)
	return pinHash, pinSalt, err
}
