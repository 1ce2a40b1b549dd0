package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseLimit reads the limit query param, applying a fallback and a cap.
func ParseLimit(c *fiber.Ctx, fallback, max int) int {
	limit := parseInt(c.Query("limit", ""), fallback)
	if limit <= 0 {
		limit = fallback
	}
	if limit > max {
		limit = max
	}
	return limit
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
