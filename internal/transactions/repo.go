package transactions

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// Create inserts one transaction and returns its id. Ids are UUIDs
// generated here rather than by the database, so the public identifier
// stays an opaque string. The request must already be validated.
func (r *Repo) Create(ctx context.Context, req CreateRequest) (string, error) {
	id := uuid.NewString()
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO transactions
		 (id, telegram_id, type, amount, category_key, description, merchant, tx_date, source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::date, $9)`,
		id, req.TelegramID, req.Type, *req.Amount, req.CategoryKey,
		req.Description, req.Merchant, req.TxDate, req.Source,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}
