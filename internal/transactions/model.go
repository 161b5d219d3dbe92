package transactions

import (
	"errors"
	"time"
)

const (
	TypeExpense = "expense"
	TypeIncome  = "income"
	TypeDebt    = "debt"
)

var (
	ErrInvalidType     = errors.New("type must be one of expense, income, debt")
	ErrNegativeAmount  = errors.New("amount must be >= 0")
	ErrMissingAmount   = errors.New("amount is required")
	ErrMissingUser     = errors.New("telegram_id is required")
	ErrMissingCategory = errors.New("category_key is required")
	ErrInvalidDate     = errors.New("tx_date must be YYYY-MM-DD")
)

// Transaction mirrors one row of the transactions table. Rows are
// immutable after insert; there is no update or delete path.
type Transaction struct {
	ID          string     `json:"id"`
	TelegramID  int64      `json:"telegram_id"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	CategoryKey string     `json:"category_key"`
	Description *string    `json:"description,omitempty"`
	Merchant    *string    `json:"merchant,omitempty"`
	TxDate      *time.Time `json:"tx_date,omitempty"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateRequest is the typed create payload. The legacy endpoint
// normalizes its loose payload into this same struct so both paths share
// one validation and one insert.
type CreateRequest struct {
	TelegramID  int64   `json:"telegram_id"`
	Type        string  `json:"type"`
	Amount      *int64  `json:"amount"`
	CategoryKey string  `json:"category_key"`
	Description *string `json:"description"`
	Merchant    *string `json:"merchant"`
	TxDate      string  `json:"tx_date"`
	Source      string  `json:"source"`
}

func ValidType(t string) bool {
	return t == TypeExpense || t == TypeIncome || t == TypeDebt
}

// Validate applies defaults and rejects out-of-range values before
// anything touches the database.
func (r *CreateRequest) Validate() error {
	if r.TelegramID <= 0 {
		return ErrMissingUser
	}
	if r.Type == "" {
		r.Type = TypeExpense
	}
	if !ValidType(r.Type) {
		return ErrInvalidType
	}
	if r.Amount == nil {
		return ErrMissingAmount
	}
	if *r.Amount < 0 {
		return ErrNegativeAmount
	}
	if r.CategoryKey == "" {
		return ErrMissingCategory
	}
	if r.TxDate != "" {
		if _, err := time.Parse("2006-01-02", r.TxDate); err != nil {
			return ErrInvalidDate
		}
	}
	if r.Source == "" {
		r.Source = "text"
	}
	return nil
}
