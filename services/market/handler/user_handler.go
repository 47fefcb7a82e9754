package handler

import (
	"fmt"
	"net/http"
	"time"

	model "gigboard/internal/models"
	"gigboard/services/market/helpers"
	"gigboard/utils"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	Register(name, email, password string) (model.User, string, error)
	Login(email, password string) (model.User, string, error)
	GetByID(userID string) (model.User, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

func userResponse(user model.User) helpers.UserResponse {
	return helpers.UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RegisterHandler handles POST /api/auth/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, token, err := h.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	resp := helpers.AuthResponse{User: userResponse(user), Token: token}
	utils.JSONResponse(c, http.StatusCreated, resp, "registration successful")
	helpers.LogSuccess("RegisterHandler", "registration successful", map[string]any{
		"user_id": user.UserID,
	})
}

// LoginHandler handles POST /api/auth/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	resp := helpers.AuthResponse{User: userResponse(user), Token: token}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.UserID,
	})
}

// CurrentUserHandler handles GET /api/auth/me
func (h *UserHandler) CurrentUserHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.service.GetByID(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CurrentUserHandler: lookup failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, userResponse(user), "user retrieved successfully")
}
