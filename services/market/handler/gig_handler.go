package handler

import (
	"fmt"
	"net/http"

	model "gigboard/internal/models"
	"gigboard/services/market/helpers"
	"gigboard/utils"

	"github.com/gin-gonic/gin"
)

type GigServiceInterface interface {
	CreateGig(ownerID, title, description string, budget float64) (model.Gig, error)
	ListOpen(titleFilter string) ([]model.Gig, error)
	GetGig(gigID string) (model.Gig, error)
}

type GigHandler struct {
	service GigServiceInterface
}

func NewGigHandler(service GigServiceInterface) *GigHandler {
	return &GigHandler{service: service}
}

// CreateGigHandler handles POST /api/gigs
func (h *GigHandler) CreateGigHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req helpers.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGigHandler", err)
		return
	}

	gig, err := h.service.CreateGig(userID, req.Title, req.Description, req.Budget)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateGigHandler: failed to create gig", map[string]any{
			"owner_id": userID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gig, "gig created successfully")
	helpers.LogSuccess("CreateGigHandler", "gig created successfully", map[string]any{
		"gig_id":   gig.GigID,
		"owner_id": userID,
		"budget":   gig.Budget,
	})
}

// ListGigsHandler handles GET /api/gigs
func (h *GigHandler) ListGigsHandler(c *gin.Context) {
	titleFilter := c.Query("title")

	gigList, err := h.service.ListOpen(titleFilter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListGigsHandler: error listing gigs", map[string]any{"error": err.Error()})
		return
	}

	if gigList == nil {
		gigList = []model.Gig{}
	}

	utils.JSONResponse(c, http.StatusOK, gigList, "gigs retrieved successfully")
}

// GetGigHandler handles GET /api/gigs/:gig_id
func (h *GigHandler) GetGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")

	gig, err := h.service.GetGig(gigID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetGigHandler: error retrieving gig", map[string]any{
			"gig_id": gigID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gig, "gig retrieved successfully")
}
