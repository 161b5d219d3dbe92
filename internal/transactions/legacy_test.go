package transactions

import (
	"errors"
	"testing"
)

func TestNormalizeLegacyDefaults(t *testing.T) {
	req, err := NormalizeLegacy(map[string]any{
		"telegram_id": float64(7),
		"amount":      float64(500),
	})
	if err != nil {
		t.Fatalf("NormalizeLegacy() = %v, want nil", err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	if req.TelegramID != 7 {
		t.Errorf("TelegramID = %d, want 7", req.TelegramID)
	}
	if req.Type != TypeExpense {
		t.Errorf("Type = %q, want %q", req.Type, TypeExpense)
	}
	if req.Amount == nil || *req.Amount != 500 {
		t.Errorf("Amount = %v, want 500", req.Amount)
	}
	if req.CategoryKey != "other" {
		t.Errorf("CategoryKey = %q, want %q", req.CategoryKey, "other")
	}
	if req.Source != "bot" {
		t.Errorf("Source = %q, want %q", req.Source, "bot")
	}
}

func TestNormalizeLegacyFieldAliases(t *testing.T) {
	req, err := NormalizeLegacy(map[string]any{
		"user_id":  float64(9),
		"amount":   "1200",
		"category": "taxi",
		"type":     "income",
		"source":   "voice",
	})
	if err != nil {
		t.Fatalf("NormalizeLegacy() = %v, want nil", err)
	}

	if req.TelegramID != 9 {
		t.Errorf("TelegramID = %d, want 9 (user_id alias)", req.TelegramID)
	}
	if req.Amount == nil || *req.Amount != 1200 {
		t.Errorf("Amount = %v, want 1200 (string amount)", req.Amount)
	}
	if req.CategoryKey != "taxi" {
		t.Errorf("CategoryKey = %q, want %q", req.CategoryKey, "taxi")
	}
	if req.Source != "voice" {
		t.Errorf("Source = %q, want %q", req.Source, "voice")
	}
}

func TestNormalizeLegacyCategoryKeyAlias(t *testing.T) {
	req, err := NormalizeLegacy(map[string]any{
		"telegram_id":  float64(7),
		"amount":       float64(10),
		"category_key": "groceries",
	})
	if err != nil {
		t.Fatalf("NormalizeLegacy() = %v, want nil", err)
	}
	if req.CategoryKey != "groceries" {
		t.Errorf("CategoryKey = %q, want %q", req.CategoryKey, "groceries")
	}
}

func TestNormalizeLegacyMissingFields(t *testing.T) {
	if _, err := NormalizeLegacy(map[string]any{"amount": float64(100)}); !errors.Is(err, ErrMissingUser) {
		t.Errorf("missing user: err = %v, want %v", err, ErrMissingUser)
	}
	if _, err := NormalizeLegacy(map[string]any{"telegram_id": float64(7)}); !errors.Is(err, ErrMissingAmount) {
		t.Errorf("missing amount: err = %v, want %v", err, ErrMissingAmount)
	}
}
