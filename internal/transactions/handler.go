package transactions

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/robiyakhmed13-ux/hamyon-api/internal/audit"
)

// Store is what the handlers need from storage; *Repo satisfies it.
type Store interface {
	Create(ctx context.Context, req CreateRequest) (string, error)
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

// Create handles the primary, strictly validated endpoint.
func (h *Handler) Create(c *fiber.Ctx) error {
	var body CreateRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := body.Validate(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.Store.Create(c.UserContext(), body)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save transaction: "+err.Error())
	}

	h.recordAudit(c, "tx.create", id, body.TelegramID)

	return c.JSON(fiber.Map{"ok": true, "id": id})
}

// recordAudit writes a best-effort audit row. The transaction is already
// committed; an audit failure must not fail the request.
func (h *Handler) recordAudit(c *fiber.Ctx, action, entityID string, telegramID int64) {
	if h.Audit == nil {
		return
	}
	if err := h.Audit.Write(c.UserContext(), audit.Entry{
		Action:     action,
		EntityType: "transaction",
		EntityID:   entityID,
		TelegramID: telegramID,
	}); err != nil {
		log.Printf("audit write failed: %v", err)
	}
}
