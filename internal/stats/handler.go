package stats

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/robiyakhmed13-ux/hamyon-api/internal/request"
)

const DefaultRangeDays = 7

// Store is what the handlers need from storage; *Repo satisfies it.
type Store interface {
	TotalsForDay(ctx context.Context, telegramID int64, day string) (Totals, error)
	TotalsSince(ctx context.Context, telegramID int64, since string) (Totals, error)
}

type Handler struct {
	Store Store
	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

// WindowStart returns the first day of a trailing window of `days`
// calendar days ending on `now`, inclusive on both ends.
func WindowStart(now time.Time, days int) string {
	if days <= 0 {
		days = DefaultRangeDays
	}
	return now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
}

func (h *Handler) Today(c *fiber.Ctx) error {
	telegramID, err := request.ParseTelegramID(c.Query("telegram_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "telegram_id must be a positive integer")
	}

	day := h.Now().Format("2006-01-02")
	totals, err := h.Store.TotalsForDay(c.UserContext(), telegramID, day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute stats: "+err.Error())
	}

	return c.JSON(totals)
}

func (h *Handler) Range(c *fiber.Ctx) error {
	telegramID, err := request.ParseTelegramID(c.Query("telegram_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "telegram_id must be a positive integer")
	}

	days := DefaultRangeDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	since := WindowStart(h.Now(), days)
	totals, err := h.Store.TotalsSince(c.UserContext(), telegramID, since)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute stats: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"expense": totals.Expense,
		"income":  totals.Income,
		"debt":    totals.Debt,
		"count":   totals.Count,
		"since":   since,
	})
}
