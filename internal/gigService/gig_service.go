package gigs

import (
	"fmt"
	"strings"
	"time"

	"gigboard/internal/marketerrors"
	model "gigboard/internal/models"
	"gigboard/internal/repository"
	"gigboard/utils"
)

// GigService handles posting and browsing gigs
type GigService struct {
	repo repository.MarketDB
}

// NewGigService creates a new GigService instance
func NewGigService(repo repository.MarketDB) *GigService {
	return &GigService{
		repo: repo,
	}
}

// CreateGig validates and stores a new open gig owned by ownerID
func (s *GigService) CreateGig(ownerID, title, description string, budget float64) (model.Gig, error) {
	title = strings.TrimSpace(title)
	if ownerID == "" || title == "" || description == "" {
		return model.Gig{}, fmt.Errorf("service: %w - missing owner, title or description", marketerrors.ErrInvalidInput)
	}
	if budget <= 0 {
		return model.Gig{}, fmt.Errorf("service: %w - non-positive budget", marketerrors.ErrInvalidInput)
	}

	gig := model.Gig{
		GigID:       utils.GenerateID(),
		Title:       title,
		Description: description,
		Budget:      budget,
		OwnerID:     ownerID,
		Status:      model.GigOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateGig(gig); err != nil {
		return model.Gig{}, fmt.Errorf("service: failed to create gig for owner %s: %w", ownerID, err)
	}

	return gig, nil
}

// ListOpen returns open gigs, optionally filtered by title substring
func (s *GigService) ListOpen(titleFilter string) ([]model.Gig, error) {
	gigs, err := s.repo.ListOpenGigs(titleFilter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open gigs: %w", err)
	}
	return gigs, nil
}

// GetGig returns a single gig by id
func (s *GigService) GetGig(gigID string) (model.Gig, error) {
	if gigID == "" {
		return model.Gig{}, fmt.Errorf("service: %w - empty gig ID", marketerrors.ErrInvalidInput)
	}

	gig, err := s.repo.GetGig(gigID)
	if err != nil {
		return model.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	return gig, nil
}
