package notify

import (
	"sync"

	"gigboard/internal/eventbus"
	model "gigboard/internal/models"
	"gigboard/utils"
)

// EventHire is the event name delivered to realtime clients when one of
// their bids is hired.
const EventHire = "hire"

// EventUnauthorized is sent to a connection that failed credential
// verification, immediately before it is closed.
const EventUnauthorized = "unauthorized"

// Conn is one live realtime connection bound to a user. Send must be safe
// for concurrent use; a non-nil error marks the connection dead.
type Conn interface {
	Send(event string, data any) error
}

// HirePayload is the payload of a hire event
type HirePayload struct {
	Gig          model.Gig `json:"gig"`
	FreelancerID string    `json:"freelancerId"`
}

// Router keeps the registry of authenticated realtime sessions and routes
// hire events to the sessions of the hired freelancer. Notifications are a
// convenience channel: a freelancer with no live session simply misses the
// event.
type Router struct {
	mu       sync.RWMutex
	sessions map[string]map[Conn]struct{} // key: userID -> live connections
	owners   map[Conn]string              // key: connection -> userID
}

// NewRouter creates an empty session registry
func NewRouter() *Router {
	return &Router{
		sessions: make(map[string]map[Conn]struct{}),
		owners:   make(map[Conn]string),
	}
}

// Start subscribes the router to hire events. Called once at process
// startup; the subscription lives for the life of the process.
func (r *Router) Start(bus eventbus.Bus) {
	bus.Subscribe(r.handleHire)
}

// Register binds a verified connection to a user identity. Multiple
// concurrent connections per identity are allowed (multi-device).
func (r *Router) Register(userID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.sessions[userID]
	if !ok {
		conns = make(map[Conn]struct{})
		r.sessions[userID] = conns
	}
	conns[conn] = struct{}{}
	r.owners[conn] = userID
}

// Unregister removes a connection from the registry. Idempotent; safe to
// call for connections that were never registered.
func (r *Router) Unregister(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drop(conn)
}

// Sessions returns the number of live connections for a user
func (r *Router) Sessions(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions[userID])
}

// drop removes a connection; caller must hold the write lock
func (r *Router) drop(conn Conn) {
	userID, ok := r.owners[conn]
	if !ok {
		return
	}
	delete(r.owners, conn)
	delete(r.sessions[userID], conn)
	if len(r.sessions[userID]) == 0 {
		delete(r.sessions, userID)
	}
}

// handleHire delivers the hire event to every live session of the hired
// freelancer. Delivery failures are logged and the dead connection dropped;
// nothing propagates back to the hiring path.
func (r *Router) handleHire(event eventbus.HireOccurred) {
	r.mu.RLock()
	conns := make([]Conn, 0, len(r.sessions[event.FreelancerID]))
	for conn := range r.sessions[event.FreelancerID] {
		conns = append(conns, conn)
	}
	r.mu.RUnlock()

	if len(conns) == 0 {
		utils.Debug("notify: no live sessions, dropping hire event", map[string]any{
			"freelancer_id": event.FreelancerID,
			"gig_id":        event.Gig.GigID,
		})
		return
	}

	payload := HirePayload{Gig: event.Gig, FreelancerID: event.FreelancerID}
	for _, conn := range conns {
		if err := conn.Send(EventHire, payload); err != nil {
			utils.Warn("notify: dropping dead session", map[string]any{
				"freelancer_id": event.FreelancerID,
				"error":         err.Error(),
			})
			r.mu.Lock()
			r.drop(conn)
			r.mu.Unlock()
		}
	}

	utils.Info("notify: hire event delivered", map[string]any{
		"freelancer_id": event.FreelancerID,
		"gig_id":        event.Gig.GigID,
		"sessions":      len(conns),
	})
}
