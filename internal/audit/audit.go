package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	Action     string
	EntityType string
	EntityID   string
	TelegramID int64
	Metadata   []byte
}

type Logger struct {
	Pool *pgxpool.Pool
}

func NewLogger(pool *pgxpool.Pool) *Logger {
	return &Logger{Pool: pool}
}

// Write records an audit entry; failures are returned so callers can
// decide whether to surface or just log them.
func (l *Logger) Write(ctx context.Context, e Entry) error {
	if l == nil || l.Pool == nil {
		return nil
	}

	var metadata any
	if len(e.Metadata) > 0 {
		metadata = json.RawMessage(e.Metadata)
	}

	_, err := l.Pool.Exec(ctx, `
INSERT INTO audit_logs (action, entity_type, entity_id, telegram_id, metadata)
VALUES ($1, $2, $3, NULLIF($4, 0), $5)
`, e.Action, e.EntityType, e.EntityID, e.TelegramID, metadata)

	return err
}
