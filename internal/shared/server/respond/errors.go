package respond

import (
	"github.com/gin-gonic/gin"

	"profile-forge-backend/internal/shared/telemetry"
)

// DetailResponse is the error body returned by every endpoint.
type DetailResponse struct {
	Detail any `json:"detail"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Detail logs and sends an error response with the given detail payload.
func Detail(c *gin.Context, status int, detail any) {
	fields := map[string]any{
		"status":     status,
		"detail":     detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if status >= 500 {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, DetailResponse{Detail: detail})
}
