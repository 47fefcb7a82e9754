package helpers

// Request/Response DTOs
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateGigRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	GigID   string `json:"gig_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UserResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type HireResponse struct {
	BidID        string  `json:"bid_id"`
	BidStatus    string  `json:"bid_status"`
	GigID        string  `json:"gig_id"`
	GigStatus    string  `json:"gig_status"`
	GigTitle     string  `json:"gig_title"`
	Budget       float64 `json:"budget"`
	FreelancerID string  `json:"freelancer_id"`
}
