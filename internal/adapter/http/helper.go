package http

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// actorFromHeader resolves who performed the action for the audit trail.
// Self-service calls carry no header and fall back to "applicant".
func actorFromHeader(c echo.Context) string {
	if v := c.Request().Header.Get("Ax-Actor-Id"); v != "" {
		return v
	}
	return "applicant"
}
