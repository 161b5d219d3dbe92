package request

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseTelegramID parses the telegram_id query value every read endpoint
// takes. Telegram ids are positive integers; anything else is a caller
// error.
func ParseTelegramID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrUnprocessableEntity
	}
	return id, nil
}
