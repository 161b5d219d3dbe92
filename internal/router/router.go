package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/robiyakhmed13-ux/hamyon-api/internal/export"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/stats"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/transactions"
	"github.com/robiyakhmed13-ux/hamyon-api/internal/users"
)

type Router struct {
	UsersHandler        *users.Handler
	TransactionsHandler *transactions.Handler
	StatsHandler        *stats.Handler
	ExportHandler       *export.Handler
	AuthMW              fiber.Handler
	// WriteLimitMW rate-limits the insert endpoints; optional.
	WriteLimitMW fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	writeMW := func(h fiber.Handler) []fiber.Handler {
		if r.WriteLimitMW != nil {
			return []fiber.Handler{r.WriteLimitMW, r.AuthMW, h}
		}
		return []fiber.Handler{r.AuthMW, h}
	}

	if r.UsersHandler != nil {
		app.Post("/users/lang", writeMW(r.UsersHandler.SetLanguage)...)
		app.Get("/users/lang", r.AuthMW, r.UsersHandler.GetLanguage)
	}

	if r.TransactionsHandler != nil {
		app.Post("/transactions", writeMW(r.TransactionsHandler.Create)...)
		app.Post("/sync/tx", writeMW(r.TransactionsHandler.CreateLegacy)...)
	}

	if r.StatsHandler != nil {
		app.Get("/stats/today", r.AuthMW, r.StatsHandler.Today)
		app.Get("/stats/range", r.AuthMW, r.StatsHandler.Range)
	}

	if r.ExportHandler != nil {
		app.Get("/export/csv", r.AuthMW, r.ExportHandler.CSV)
		app.Get("/export/pdf", r.AuthMW, r.ExportHandler.PDF)
	}
}
