package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"gigboard/internal/auth"
	"gigboard/internal/notify"
	"gigboard/utils"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// heartbeatInterval keeps intermediaries from timing out idle streams
const heartbeatInterval = 30 * time.Second

// sessionBuffer is each connection's outbound event queue; a session that
// falls this far behind is considered dead
const sessionBuffer = 16

var errSessionBacklog = errors.New("session event buffer full")

type TokenVerifierInterface interface {
	Verify(credential string) (auth.Identity, error)
}

// RealtimeHandler serves the SSE notification stream. Connections are
// registered with the notification router only after their credential
// verifies; failures get an unauthorized event and the stream ends.
type RealtimeHandler struct {
	verifier TokenVerifierInterface
	registry *notify.Router
}

func NewRealtimeHandler(verifier TokenVerifierInterface, registry *notify.Router) *RealtimeHandler {
	return &RealtimeHandler{verifier: verifier, registry: registry}
}

// sseConn adapts a buffered event channel to notify.Conn
type sseConn struct {
	events chan sse.Event
}

func newSSEConn() *sseConn {
	return &sseConn{events: make(chan sse.Event, sessionBuffer)}
}

// Send queues an event for the stream loop. Never blocks: a full buffer
// means the client stopped draining, so the session is reported dead.
func (s *sseConn) Send(event string, data any) error {
	select {
	case s.events <- sse.Event{Event: event, Data: data}:
		return nil
	default:
		return errSessionBacklog
	}
}

// credential pulls the bearer token from the Authorization header, falling
// back to the access_token query parameter for EventSource clients, which
// cannot set request headers.
func credential(c *gin.Context) string {
	if token, err := auth.TokenFromHeader(c.GetHeader("Authorization")); err == nil {
		return token
	}
	return c.Query("access_token")
}

// StreamEventsHandler handles GET /api/events
func (h *RealtimeHandler) StreamEventsHandler(c *gin.Context) {
	identity, err := h.verifier.Verify(credential(c))
	if err != nil {
		// Signal unauthorized on the stream itself, then close. The
		// connection is never registered.
		c.Render(http.StatusUnauthorized, sse.Event{Event: notify.EventUnauthorized, Data: ""})
		utils.Warn("StreamEventsHandler: rejected unverified connection", map[string]any{
			"remote": c.ClientIP(),
			"error":  err.Error(),
		})
		return
	}

	conn := newSSEConn()
	h.registry.Register(identity.UserID, conn)
	defer h.registry.Unregister(conn)

	utils.Info("StreamEventsHandler: session registered", map[string]any{
		"user_id": identity.UserID,
	})

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case event := <-conn.events:
			if encodeErr := sse.Encode(w, event); encodeErr != nil {
				return false
			}
			return true
		case <-heartbeat.C:
			if encodeErr := sse.Encode(w, sse.Event{Event: "ping", Data: ""}); encodeErr != nil {
				return false
			}
			return true
		case <-clientGone:
			return false
		}
	})

	utils.Info("StreamEventsHandler: session closed", map[string]any{
		"user_id": identity.UserID,
	})
}
