package stream

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"wellbook/internal/domain"
	jwtsvc "wellbook/internal/pkg/jwt"
	"wellbook/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws/events", h.HandleWebSocket)
}

// HandleWebSocket upgrades GET /ws/events?token=JWT for operator roles.
// Auth rides on a query parameter because browsers cannot set headers on
// websocket upgrades.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	switch claims.Role {
	case domain.RoleAdmin, domain.RoleOwner, domain.RoleDispatcher, domain.RoleProvider:
	default:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Operator role required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("stream: upgrade failed err=%v", err)
		return
	}

	log.Printf("stream: user %d connected", claims.UserID)
	h.hub.ServeWS(conn, claims.UserID)
}
