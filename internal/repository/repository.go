package repository

import (
	"fmt"
	"strings"
	"sync"

	"gigboard/internal/marketerrors"
	model "gigboard/internal/models"
)

// MarketDB defines the persistence interface for the marketplace
type MarketDB interface {
	CreateUser(user model.User) error
	GetUserByEmail(email string) (model.User, error)
	GetUserByID(userID string) (model.User, error)

	CreateGig(gig model.Gig) error
	GetGig(gigID string) (model.Gig, error)
	ListOpenGigs(titleFilter string) ([]model.Gig, error)
	// ConditionalUpdateGigStatus sets the gig's status to newStatus only if
	// its current status equals expected. Returns false when the gig's
	// status has moved on; callers use this as the single-winner gate for
	// concurrent hires.
	ConditionalUpdateGigStatus(gigID string, expected, newStatus model.GigStatus) (bool, error)

	CreateBid(bid model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	GetBidsByGig(gigID string) ([]model.Bid, error)
	// UpdateBidStatus transitions a bid away from pending. Transitions from
	// hired or rejected are refused.
	UpdateBidStatus(bidID string, newStatus model.BidStatus) error
	// RejectOtherPendingBids marks every pending bid on the gig other than
	// exceptBidID as rejected and reports how many were rejected.
	RejectOtherPendingBids(gigID, exceptBidID string) (int, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu         sync.RWMutex
	users      map[string]model.User          // key: userID
	emails     map[string]string              // key: lowercased email -> userID
	gigs       map[string]model.Gig           // key: gigID
	bids       map[string]model.Bid           // key: bidID
	gigBids    map[string][]string            // key: gigID -> ordered bidIDs
	gigBidders map[string]map[string]struct{} // key: gigID -> set of freelancerIDs
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      make(map[string]model.User),
		emails:     make(map[string]string),
		gigs:       make(map[string]model.Gig),
		bids:       make(map[string]model.Bid),
		gigBids:    make(map[string][]string),
		gigBidders: make(map[string]map[string]struct{}),
	}
}

// CreateUser stores a new user, enforcing email uniqueness
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := r.emails[key]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, marketerrors.ErrEmailTaken)
	}

	r.users[user.UserID] = user
	r.emails[key] = user.UserID
	return nil
}

// GetUserByEmail looks a user up by email, case-insensitive
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.emails[strings.ToLower(email)]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, marketerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// GetUserByID returns the user with the given id
func (r *MemoryRepo) GetUserByID(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateGig stores a new gig
func (r *MemoryRepo) CreateGig(gig model.Gig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gigs[gig.GigID] = gig
	return nil
}

// GetGig returns the gig with the given id
func (r *MemoryRepo) GetGig(gigID string) (model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}
	return gig, nil
}

// ListOpenGigs returns all open gigs, optionally filtered by a
// case-insensitive title substring
func (r *MemoryRepo) ListOpenGigs(titleFilter string) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter := strings.ToLower(titleFilter)
	gigs := make([]model.Gig, 0)
	for _, gig := range r.gigs {
		if gig.Status != model.GigOpen {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(gig.Title), filter) {
			continue
		}
		gigs = append(gigs, gig)
	}
	return gigs, nil
}

// ConditionalUpdateGigStatus implements the compare-and-swap primitive for
// gig status. The check and the write happen under one lock acquisition, so
// at most one caller per expected status ever observes true.
func (r *MemoryRepo) ConditionalUpdateGigStatus(gigID string, expected, newStatus model.GigStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return false, fmt.Errorf("conditional update gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}
	if gig.Status != expected {
		return false, nil
	}

	gig.Status = newStatus
	r.gigs[gigID] = gig
	return true, nil
}

// CreateBid records a bid, enforcing the one-bid-per-freelancer-per-gig
// constraint and that the parent gig is still open
func (r *MemoryRepo) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[bid.GigID]
	if !ok {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotFound)
	}
	if gig.Status != model.GigOpen {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotOpen)
	}

	bidders, ok := r.gigBidders[bid.GigID]
	if !ok {
		bidders = make(map[string]struct{})
		r.gigBidders[bid.GigID] = bidders
	}
	if _, exists := bidders[bid.FreelancerID]; exists {
		return fmt.Errorf("create bid for gig %s by freelancer %s: %w",
			bid.GigID, bid.FreelancerID, marketerrors.ErrDuplicateBid)
	}

	r.bids[bid.BidID] = bid
	r.gigBids[bid.GigID] = append(r.gigBids[bid.GigID], bid.BidID)
	bidders[bid.FreelancerID] = struct{}{}
	return nil
}

// GetBid returns the bid with the given id
func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidsByGig returns all bids for a gig in placement order
func (r *MemoryRepo) GetBidsByGig(gigID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.gigs[gigID]; !ok {
		return nil, fmt.Errorf("get bids for gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}

	bidIDs := r.gigBids[gigID]
	bids := make([]model.Bid, 0, len(bidIDs))
	for _, id := range bidIDs {
		bids = append(bids, r.bids[id])
	}
	return bids, nil
}

// UpdateBidStatus transitions a bid away from pending
func (r *MemoryRepo) UpdateBidStatus(bidID string, newStatus model.BidStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	if bid.Status != model.BidPending {
		return fmt.Errorf("update bid %s from %s: %w", bidID, bid.Status, marketerrors.ErrBidNotPending)
	}

	bid.Status = newStatus
	r.bids[bidID] = bid
	return nil
}

// RejectOtherPendingBids rejects every pending bid on the gig except the
// given one
func (r *MemoryRepo) RejectOtherPendingBids(gigID, exceptBidID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gigs[gigID]; !ok {
		return 0, fmt.Errorf("reject bids for gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}

	rejected := 0
	for _, bidID := range r.gigBids[gigID] {
		bid := r.bids[bidID]
		if bid.BidID == exceptBidID || bid.Status != model.BidPending {
			continue
		}
		bid.Status = model.BidRejected
		r.bids[bidID] = bid
		rejected++
	}
	return rejected, nil
}
