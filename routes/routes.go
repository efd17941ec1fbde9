package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio-booking-server/storage"
	ws "studio-booking-server/websocket"
)

// Package-level collaborators, wired once at startup (main) or by
// tests. Handlers are plain functions like the rest of this package,
// so shared dependencies live here.
var (
	// Notifier persists notifications and feeds the admins room.
	Notifier *ws.Notifier

	// Media is the object store backing gallery and studio assets.
	Media storage.ObjectStore
)

// parseID parses a numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// formatUint renders a uint the way JSON object keys arrive.
func formatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// signedOrNil signs a stored object key into a display URL, returning
// nil when signing fails or the key is empty. Signing is a soft path:
// failures surface as an absent URL, never as a request error.
func signedOrNil(c *gin.Context, key string) *string {
	if key == "" || Media == nil {
		return nil
	}
	url, err := Media.SignedURL(c.Request.Context(), key)
	if err != nil {
		return nil
	}
	return &url
}
