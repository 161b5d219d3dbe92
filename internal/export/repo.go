package export

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MaxRows caps the export at the most recent rows; older history is
// silently truncated.
const MaxRows = 2000

// Row is one line of the export table, already shaped for rendering:
// Day carries the effective date (tx_date if set, else the creation
// date) so CSV and PDF share the same bucketing as the stats queries.
type Row struct {
	CreatedAt   time.Time
	Type        string
	Amount      int64
	Category    string
	Description *string
	Merchant    *string
	Day         string
	Source      string
}

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) History(ctx context.Context, telegramID int64) ([]Row, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT
			created_at,
			type,
			amount,
			category_key,
			description,
			merchant,
			COALESCE(tx_date, created_at::date)::text AS day,
			source
		FROM transactions
		WHERE telegram_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, telegramID, MaxRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Row, 0, 64)
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.CreatedAt, &row.Type, &row.Amount, &row.Category,
			&row.Description, &row.Merchant, &row.Day, &row.Source,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
