package bids

import (
	"fmt"
	"strings"
	"time"

	"gigboard/internal/marketerrors"
	model "gigboard/internal/models"
	"gigboard/internal/repository"
	"gigboard/utils"
)

// BidService handles freelancers' bids against gigs
type BidService struct {
	repo repository.MarketDB
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.MarketDB) *BidService {
	return &BidService{
		repo: repo,
	}
}

// PlaceBid validates and records a freelancer's bid on a gig. The store
// enforces that the gig is open and that the freelancer has no earlier bid
// on it.
func (s *BidService) PlaceBid(gigID, freelancerID, message string) (model.Bid, error) {
	message = strings.TrimSpace(message)
	if gigID == "" || freelancerID == "" || message == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing gig, freelancer or message", marketerrors.ErrInvalidInput)
	}

	bid := model.Bid{
		BidID:        utils.GenerateID(),
		GigID:        gigID,
		FreelancerID: freelancerID,
		Message:      message,
		Status:       model.BidPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateBid(bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid on gig %s by %s: %w", gigID, freelancerID, err)
	}

	return bid, nil
}

// ListBidsForGig returns all bids for a gig. Only the gig owner may see
// them.
func (s *BidService) ListBidsForGig(requesterID, gigID string) ([]model.Bid, error) {
	if requesterID == "" || gigID == "" {
		return nil, fmt.Errorf("service: %w - missing requester or gig ID", marketerrors.ErrInvalidInput)
	}

	gig, err := s.repo.GetGig(gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	if gig.OwnerID != requesterID {
		return nil, fmt.Errorf("service: list bids for gig %s by %s: %w", gigID, requesterID, marketerrors.ErrForbidden)
	}

	bidList, err := s.repo.GetBidsByGig(gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for gig %s: %w", gigID, err)
	}
	return bidList, nil
}
