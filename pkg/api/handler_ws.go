package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /ws: upgrades to WebSocket and hands the
// connection to the event hub. Blocks until the client disconnects.
func (s *Server) wsHandler(c *gin.Context) {
	if s.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if s.cfg != nil && len(s.cfg.System.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.System.AllowedWSOrigins
	} else {
		// No allowlist configured: accept any origin. Deployments behind
		// an authenticating proxy rely on the proxy for origin control.
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		// Accept already wrote the HTTP error response.
		return
	}

	s.hub.HandleConnection(c.Request.Context(), conn)
}
