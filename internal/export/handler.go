package export

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/robiyakhmed13-ux/hamyon-api/internal/request"
)

// Store is what the handlers need from storage; *Repo satisfies it.
type Store interface {
	History(ctx context.Context, telegramID int64) ([]Row, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// truncate enforces the export cap even if the store returns more; the
// repo query already limits itself, this keeps the cap in one constant.
func truncate(rows []Row) []Row {
	if len(rows) > MaxRows {
		return rows[:MaxRows]
	}
	return rows
}

func (h *Handler) CSV(c *fiber.Ctx) error {
	telegramID, err := request.ParseTelegramID(c.Query("telegram_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "telegram_id must be a positive integer")
	}

	rows, err := h.Store.History(c.UserContext(), telegramID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}

	body, err := RenderCSV(truncate(rows))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render csv: "+err.Error())
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	return c.Send(body)
}

func (h *Handler) PDF(c *fiber.Ctx) error {
	telegramID, err := request.ParseTelegramID(c.Query("telegram_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "telegram_id must be a positive integer")
	}

	rows, err := h.Store.History(c.UserContext(), telegramID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}

	body, err := RenderPDF(telegramID, truncate(rows))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render pdf: "+err.Error())
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="transactions.pdf"`)
	return c.Send(body)
}
