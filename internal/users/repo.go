package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// SetLanguage upserts the user's language preference. The single
// ON CONFLICT statement makes concurrent writers last-write-wins without
// any locking on our side.
func (r *Repo) SetLanguage(ctx context.Context, telegramID int64, language string) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO users (telegram_id, language)
		 VALUES ($1, $2)
		 ON CONFLICT (telegram_id)
		 DO UPDATE SET language = EXCLUDED.language`,
		telegramID, language,
	)
	return err
}

// GetLanguage returns the stored language, or the default when the user
// has no record. Absence is not an error.
func (r *Repo) GetLanguage(ctx context.Context, telegramID int64) (string, error) {
	var language string
	err := r.Pool.QueryRow(ctx,
		`SELECT language FROM users WHERE telegram_id = $1`,
		telegramID,
	).Scan(&language)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultLanguage, nil
	}
	if err != nil {
		return "", err
	}
	return language, nil
}
