package transactions

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NormalizeLegacy maps the schema-less /sync/tx payload onto the same
// CreateRequest the primary endpoint uses. Older bot builds send
// user_id instead of telegram_id and category instead of category_key;
// first match wins, with the literal fallbacks the old API promised.
func NormalizeLegacy(payload map[string]any) (CreateRequest, error) {
	req := CreateRequest{
		TelegramID:  pickInt(payload, "user_id", "telegram_id"),
		Type:        pickString(payload, "type"),
		CategoryKey: pickString(payload, "category", "category_key"),
		Source:      pickString(payload, "source"),
		TxDate:      pickString(payload, "tx_date"),
	}
	if req.TelegramID <= 0 {
		return CreateRequest{}, ErrMissingUser
	}
	if amount, ok := intField(payload, "amount"); ok {
		req.Amount = &amount
	} else {
		return CreateRequest{}, ErrMissingAmount
	}
	if req.CategoryKey == "" {
		req.CategoryKey = "other"
	}
	if req.Source == "" {
		req.Source = "bot"
	}
	if v := pickString(payload, "description"); v != "" {
		req.Description = &v
	}
	if v := pickString(payload, "merchant"); v != "" {
		req.Merchant = &v
	}
	return req, nil
}

func pickString(payload map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := payload[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func pickInt(payload map[string]any, keys ...string) int64 {
	for _, k := range keys {
		if v, ok := intField(payload, k); ok && v != 0 {
			return v
		}
	}
	return 0
}

// intField reads a numeric field that JSON decoding may have produced as
// a float64 or that an old client may have sent as a string.
func intField(payload map[string]any, key string) (int64, bool) {
	switch v := payload[key].(type) {
	case float64:
		return int64(math.Round(v)), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// CreateLegacy handles POST /sync/tx for pre-rewrite bot clients. It is
// a thin adapter: normalize, then run the exact same validation and
// insert as the primary endpoint.
func (h *Handler) CreateLegacy(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req, err := NormalizeLegacy(payload)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing fields")
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, ErrMissingUser) || errors.Is(err, ErrMissingAmount) {
			return fiber.NewError(fiber.StatusBadRequest, "missing fields")
		}
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.Store.Create(c.UserContext(), req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save transaction: "+err.Error())
	}

	h.recordAudit(c, "tx.create.legacy", id, req.TelegramID)

	return c.JSON(fiber.Map{"id": id})
}
