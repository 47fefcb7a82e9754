package server

import (
	"net/http"
	"time"

	"gigboard/internal/auth"
	"gigboard/internal/marketerrors"
	"gigboard/services/market/handler"
	"gigboard/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware verifies the bearer credential and stashes the resolved
// user id in the request context. Requests without a valid credential are
// rejected with 401 before any handler runs.
func AuthMiddleware(verifier handler.TokenVerifierInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "unauthorized")
			c.Abort()
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "unauthorized")
			c.Abort()
			return
		}

		c.Set(handler.ContextUserKey, identity.UserID)
		c.Next()
	}
}
