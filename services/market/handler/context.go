package handler

import (
	"net/http"

	"gigboard/internal/marketerrors"
	"gigboard/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the auth middleware stores the verified user id
const ContextUserKey = "user_id"

// currentUserID pulls the verified identity set by the auth middleware.
// Responds 401 and returns false when the route was wired without it.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserKey)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "unauthorized")
		return "", false
	}
	return userID, true
}
