package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classforge/classroom-backend/internal/config"
	"github.com/classforge/classroom-backend/internal/middleware"
	"github.com/classforge/classroom-backend/internal/response"
	ws "github.com/classforge/classroom-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the live enrollment feed to admin clients.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// EnrollmentFeed godoc
// WS /ws/v1/enrollments/feed
// Upgrades to WebSocket and forwards every enrollment event published on
// the Redis feed channel until the client disconnects.
func (h *WSHandler) EnrollmentFeed(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || !claims.IsAdmin {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int("user_id", claims.UserID).Logger()
	wsLog.Info().Msg("Feed client connected")

	ctx := c.Request.Context()
	sub := h.rdb.Subscribe(ctx, config.CacheKey.EnrollmentFeedChannel())
	defer sub.Close()

	// Reader goroutine: answer pings and surface the client closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				} else {
					wsLog.Debug().Msg("Connection closed")
				}
				return
			}
			switch msg.Action {
			case ws.ActionPing:
				ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
			default:
				ws.WriteError(conn, "unknown action")
			}
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			err := ws.WriteTyped(conn, ws.EnrollmentMessage{
				Event:   ws.EventEnrollment,
				Payload: msg.Payload,
			})
			if err != nil {
				wsLog.Debug().Err(err).Msg("Feed write failed")
				return
			}
		}
	}
}
