package hiring

import (
	"fmt"

	"gigboard/internal/eventbus"
	"gigboard/internal/marketerrors"
	model "gigboard/internal/models"
	"gigboard/internal/repository"
	"gigboard/utils"
)

// HireOutcome reports a successful hire: the winning bid, the assigned gig
// and the freelancer to notify
type HireOutcome struct {
	Bid          model.Bid
	Gig          model.Gig
	FreelancerID string
}

// HiringService executes the hire transition: exactly one bid per gig ever
// wins, every other pending bid on the gig is rejected in the same logical
// transaction, and the winner is announced on the event bus.
type HiringService struct {
	repo repository.MarketDB
	bus  eventbus.Bus
}

// NewHiringService creates a new HiringService instance
func NewHiringService(repo repository.MarketDB, bus eventbus.Bus) *HiringService {
	return &HiringService{
		repo: repo,
		bus:  bus,
	}
}

// Hire validates that the requester owns the open gig behind the bid, then
// atomically assigns the gig, hires the bid and rejects the gig's other
// pending bids. Preconditions are checked in order; the first failure wins.
//
// Concurrent hires on the same gig are serialized by the store's
// conditional status update: the loser observes the gig already assigned
// and gets ErrGigNotOpen, never a partial transition.
func (s *HiringService) Hire(requesterID, bidID string) (HireOutcome, error) {
	if requesterID == "" || bidID == "" {
		return HireOutcome{}, fmt.Errorf("service: %w - missing requester or bid ID", marketerrors.ErrInvalidInput)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return HireOutcome{}, fmt.Errorf("service: hire bid %s: %w", bidID, err)
	}

	gig, err := s.repo.GetGig(bid.GigID)
	if err != nil {
		return HireOutcome{}, fmt.Errorf("service: hire bid %s: %w", bidID, err)
	}

	if gig.Status != model.GigOpen {
		return HireOutcome{}, fmt.Errorf("service: hire bid %s on gig %s: %w", bidID, gig.GigID, marketerrors.ErrGigNotOpen)
	}

	if gig.OwnerID != requesterID {
		return HireOutcome{}, fmt.Errorf("service: hire bid %s by %s: %w", bidID, requesterID, marketerrors.ErrForbidden)
	}

	// Single-winner gate. A plain read-then-write here would let two
	// concurrent hires both succeed; the conditional update guarantees at
	// most one caller flips the gig from open to assigned.
	won, err := s.repo.ConditionalUpdateGigStatus(gig.GigID, model.GigOpen, model.GigAssigned)
	if err != nil {
		return HireOutcome{}, fmt.Errorf("service: hire bid %s on gig %s: %w", bidID, gig.GigID, err)
	}
	if !won {
		// Lost the race: the gig is assigned by now, same answer as the
		// open-status check above.
		return HireOutcome{}, fmt.Errorf("service: hire bid %s on gig %s: %w", bidID, gig.GigID, marketerrors.ErrGigNotOpen)
	}

	if err := s.repo.UpdateBidStatus(bid.BidID, model.BidHired); err != nil {
		return HireOutcome{}, fmt.Errorf("service: mark bid %s hired: %w", bid.BidID, err)
	}

	rejected, err := s.repo.RejectOtherPendingBids(gig.GigID, bid.BidID)
	if err != nil {
		return HireOutcome{}, fmt.Errorf("service: reject other bids on gig %s: %w", gig.GigID, err)
	}

	gig.Status = model.GigAssigned
	bid.Status = model.BidHired

	utils.Info("hire committed", map[string]any{
		"gig_id":        gig.GigID,
		"bid_id":        bid.BidID,
		"freelancer_id": bid.FreelancerID,
		"rejected_bids": rejected,
	})

	// Emission happens only after the store mutations are committed.
	// Notification is best-effort: the hire stands whether or not anyone
	// is listening.
	s.bus.Publish(eventbus.HireOccurred{
		Gig:          gig,
		FreelancerID: bid.FreelancerID,
	})

	return HireOutcome{
		Bid:          bid,
		Gig:          gig,
		FreelancerID: bid.FreelancerID,
	}, nil
}
