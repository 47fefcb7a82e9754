package server

import (
	"gigboard/internal/notify"
	"gigboard/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles the service layer consumed by the HTTP layer
type Services struct {
	Users    handler.UserServiceInterface
	Gigs     handler.GigServiceInterface
	Bids     handler.BidServiceInterface
	Hiring   handler.HiringServiceInterface
	Verifier handler.TokenVerifierInterface
	Registry *notify.Router
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	userHandler := handler.NewUserHandler(svc.Users)
	gigHandler := handler.NewGigHandler(svc.Gigs)
	bidHandler := handler.NewBidHandler(svc.Bids)
	hiringHandler := handler.NewHiringHandler(svc.Hiring)
	realtimeHandler := handler.NewRealtimeHandler(svc.Verifier, svc.Registry)

	authRequired := AuthMiddleware(svc.Verifier)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", userHandler.RegisterHandler)
			authRoutes.POST("/login", userHandler.LoginHandler)
			authRoutes.GET("/me", authRequired, userHandler.CurrentUserHandler)
		}

		gigRoutes := api.Group("/gigs")
		{
			gigRoutes.GET("", gigHandler.ListGigsHandler)
			gigRoutes.POST("", authRequired, gigHandler.CreateGigHandler)
			gigRoutes.GET("/:gig_id", authRequired, gigHandler.GetGigHandler)
			gigRoutes.GET("/:gig_id/bids", authRequired, bidHandler.ListBidsForGigHandler)
		}

		bidRoutes := api.Group("/bids")
		{
			bidRoutes.POST("", authRequired, bidHandler.PlaceBidHandler)
			bidRoutes.PATCH("/:bid_id/hire", authRequired, hiringHandler.HireBidHandler)
		}

		// credential checked in-stream, see RealtimeHandler
		api.GET("/events", realtimeHandler.StreamEventsHandler)
	}

	return router
}
