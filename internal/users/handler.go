package users

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/robiyakhmed13-ux/hamyon-api/internal/audit"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/request"
)

// Store is what the handlers need from storage; *Repo satisfies it.
type Store interface {
	SetLanguage(ctx context.Context, telegramID int64, language string) error
	GetLanguage(ctx context.Context, telegramID int64) (string, error)
}

// AuditLog is satisfied by *audit.Logger.
type AuditLog interface {
	Write(ctx context.Context, e audit.Entry) error
}

type Handler struct {
	Store Store
	Audit AuditLog
}

func NewHandler(store Store, auditLog AuditLog) *Handler {
	return &Handler{Store: store, Audit: auditLog}
}

func (h *Handler) SetLanguage(c *fiber.Ctx) error {
	var body SetLanguageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.TelegramID <= 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "telegram_id is required")
	}
	if !ValidLanguage(body.Language) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "language must be one of uz, ru, en")
	}

	if err := h.Store.SetLanguage(c.UserContext(), body.TelegramID, body.Language); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save language: "+err.Error())
	}

	h.recordAudit(c, body.TelegramID, body.Language)

	return c.JSON(fiber.Map{"ok": true, "language": body.Language})
}

func (h *Handler) GetLanguage(c *fiber.Ctx) error {
	telegramID, err := request.ParseTelegramID(c.Query("telegram_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "telegram_id must be a positive integer")
	}

	language, err := h.Store.GetLanguage(c.UserContext(), telegramID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load language: "+err.Error())
	}

	return c.JSON(fiber.Map{"language": language})
}

// recordAudit writes a best-effort audit row. The upsert is already
// committed; an audit failure must not fail the request.
func (h *Handler) recordAudit(c *fiber.Ctx, telegramID int64, language string) {
	if h.Audit == nil {
		return
	}
	metadata, _ := json.Marshal(map[string]string{"language": language})
	if err := h.Audit.Write(c.UserContext(), audit.Entry{
		Action:     "user.set_language",
		EntityType: "user",
		EntityID:   strconv.FormatInt(telegramID, 10),
		TelegramID: telegramID,
		Metadata:   metadata,
	}); err != nil {
		log.Printf("audit write failed: %v", err)
	}
}
