package controllers

import (
	"log"
	"net/http"

	"github.com/ayiqazmi/MyCalorie/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// RealtimeSocket upgrades an authenticated request to a websocket and
// parks it on the hub until the client disconnects.
func RealtimeSocket(hub *services.RealtimeHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[realtime] upgrade failed for user %d: %v", user.ID, err)
			return
		}

		client := &services.WSClient{UserID: user.ID, Conn: conn}
		hub.Register(client)
		defer hub.Unregister(client)

		// Drain until the peer goes away; events flow the other way.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
