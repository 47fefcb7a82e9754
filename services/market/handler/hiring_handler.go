package handler

import (
	"fmt"
	"net/http"

	hiring "gigboard/internal/hiringService"
	"gigboard/services/market/helpers"
	"gigboard/utils"

	"github.com/gin-gonic/gin"
)

type HiringServiceInterface interface {
	Hire(requesterID, bidID string) (hiring.HireOutcome, error)
}

type HiringHandler struct {
	service HiringServiceInterface
}

func NewHiringHandler(service HiringServiceInterface) *HiringHandler {
	return &HiringHandler{service: service}
}

// HireBidHandler handles PATCH /api/bids/:bid_id/hire
func (h *HiringHandler) HireBidHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bidID := c.Param("bid_id")
	outcome, err := h.service.Hire(userID, bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("HireBidHandler: hire failed", map[string]any{
			"bid_id":       bidID,
			"requester_id": userID,
			"error":        err.Error(),
		})
		return
	}

	resp := helpers.HireResponse{
		BidID:        outcome.Bid.BidID,
		BidStatus:    string(outcome.Bid.Status),
		GigID:        outcome.Gig.GigID,
		GigStatus:    string(outcome.Gig.Status),
		GigTitle:     outcome.Gig.Title,
		Budget:       outcome.Gig.Budget,
		FreelancerID: outcome.FreelancerID,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid hired successfully")
	helpers.LogSuccess("HireBidHandler", "bid hired successfully", map[string]any{
		"bid_id":        outcome.Bid.BidID,
		"gig_id":        outcome.Gig.GigID,
		"freelancer_id": outcome.FreelancerID,
	})
}
