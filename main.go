package main

import (
	"fmt"
	"os"
	"time"

	"gigboard/internal/auth"
	bids "gigboard/internal/bidService"
	"gigboard/internal/eventbus"
	gigs "gigboard/internal/gigService"
	hiring "gigboard/internal/hiringService"
	"gigboard/internal/notify"
	"gigboard/internal/repository"
	"gigboard/internal/server"
	users "gigboard/internal/userService"
)

func main() {

	repo := repository.NewMemoryRepo()
	tokens := auth.NewTokenManager(getJWTSecret(), getJWTExpiry())

	bus := eventbus.NewMemoryBus()
	registry := notify.NewRouter()
	registry.Start(bus) // process-lifetime subscription

	router := server.SetupRouter(server.Services{
		Users:    users.NewUserService(repo, tokens),
		Gigs:     gigs.NewGigService(repo),
		Bids:     bids.NewBidService(repo),
		Hiring:   hiring.NewHiringService(repo, bus),
		Verifier: tokens,
		Registry: registry,
	})

	port := getPort()
	fmt.Printf("Starting gig marketplace server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getJWTSecret returns the token signing secret; the fallback only exists
// so the server runs out of the box in development
func getJWTSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "dev-only-insecure-secret"
}

// getJWTExpiry returns the token lifetime from JWT_EXPIRY (Go duration
// syntax), defaulting to 7 days
func getJWTExpiry() time.Duration {
	if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}
	return 7 * 24 * time.Hour
}
