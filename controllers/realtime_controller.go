package controllers

import (
	"net/http"

	"github.com/rnp2860/boleh-makan-vo-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens via the JWT middleware before the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	Hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

// GET /ws/alerts
func (rc *RealtimeController) AlertsWS(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: c.GetUint("userID"), Conn: conn}
	rc.Hub.Register(client)
	defer rc.Hub.Unregister(client)

	// Drain the read side so pings and close frames are processed; the
	// connection is push-only from our end.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
