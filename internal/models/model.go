package models

import "time"

// GigStatus is the lifecycle state of a gig. Transitions are
// write-once-forward: open -> assigned, never back.
type GigStatus string

const (
	GigOpen     GigStatus = "open"
	GigAssigned GigStatus = "assigned"
)

// BidStatus is the lifecycle state of a bid. Transitions are
// write-once-forward: pending -> hired or pending -> rejected.
type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidHired    BidStatus = "hired"
	BidRejected BidStatus = "rejected"
)

// User represents a registered account (client or freelancer)
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Gig represents a posted job owned by a client
type Gig struct {
	GigID       string    `json:"gig_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	OwnerID     string    `json:"owner_id"`
	Status      GigStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid represents a freelancer's proposal against a gig. A freelancer
// holds at most one bid per gig.
type Bid struct {
	BidID        string    `json:"bid_id"`
	GigID        string    `json:"gig_id"`
	FreelancerID string    `json:"freelancer_id"`
	Message      string    `json:"message"`
	Status       BidStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
