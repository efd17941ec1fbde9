package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"studio-booking-server/utils"
	ws "studio-booking-server/websocket"
)

// ServeWS upgrades the connection. The token rides in a query parameter
// because browser WebSocket clients cannot set headers; Admin and Staff
// tokens join the admins room, anything else connects anonymously.
func ServeWS(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint
		var role string

		if token := c.Query("token"); token != "" {
			claims, err := utils.VerifyToken(token)
			if err != nil {
				log.Printf("⚠️ WebSocket handshake with invalid token: %v", err)
			} else {
				userID = claims.UserID
				role = claims.Role
			}
		}

		ws.ServeWebSocket(hub, c.Writer, c.Request, userID, role)
	}
}
