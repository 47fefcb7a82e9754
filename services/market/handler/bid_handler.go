package handler

import (
	"fmt"
	"net/http"

	model "gigboard/internal/models"
	"gigboard/services/market/helpers"
	"gigboard/utils"

	"github.com/gin-gonic/gin"
)

type BidServiceInterface interface {
	PlaceBid(gigID, freelancerID, message string) (model.Bid, error)
	ListBidsForGig(requesterID, gigID string) ([]model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /api/bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.GigID, userID, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"gig_id":        req.GigID,
			"freelancer_id": userID,
			"error":         err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":        bid.BidID,
		"gig_id":        bid.GigID,
		"freelancer_id": userID,
	})
}

// ListBidsForGigHandler handles GET /api/gigs/:gig_id/bids
func (h *BidHandler) ListBidsForGigHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	gigID := c.Param("gig_id")
	bidList, err := h.service.ListBidsForGig(userID, gigID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidsForGigHandler: error retrieving bids", map[string]any{
			"gig_id":  gigID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	if bidList == nil {
		bidList = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bidList, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsForGigHandler", "bids retrieved successfully", map[string]any{
		"gig_id": gigID,
		"count":  len(bidList),
	})
}
