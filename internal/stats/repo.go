package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Totals is one aggregation window over a user's transactions.
type Totals struct {
	Expense int64 `json:"expense"`
	Income  int64 `json:"income"`
	Debt    int64 `json:"debt"`
	Count   int64 `json:"count"`
}

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// A transaction belongs to COALESCE(tx_date, created_at::date); the same
// rule the export uses, so the CSV and the stats never disagree.

func (r *Repo) TotalsForDay(ctx context.Context, telegramID int64, day string) (Totals, error) {
	var t Totals
	err := r.Pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount END), 0)::bigint AS expense,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount END), 0)::bigint AS income,
			COALESCE(SUM(CASE WHEN type = 'debt' THEN amount END), 0)::bigint AS debt,
			COUNT(*) AS count
		FROM transactions
		WHERE telegram_id = $1
		  AND COALESCE(tx_date, created_at::date) = $2::date
	`, telegramID, day).Scan(&t.Expense, &t.Income, &t.Debt, &t.Count)
	if err != nil {
		return Totals{}, err
	}
	return t, nil
}

func (r *Repo) TotalsSince(ctx context.Context, telegramID int64, since string) (Totals, error) {
	var t Totals
	err := r.Pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount END), 0)::bigint AS expense,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount END), 0)::bigint AS income,
			COALESCE(SUM(CASE WHEN type = 'debt' THEN amount END), 0)::bigint AS debt,
			COUNT(*) AS count
		FROM transactions
		WHERE telegram_id = $1
		  AND COALESCE(tx_date, created_at::date) >= $2::date
	`, telegramID, since).Scan(&t.Expense, &t.Income, &t.Debt, &t.Count)
	if err != nil {
		return Totals{}, err
	}
	return t, nil
}
