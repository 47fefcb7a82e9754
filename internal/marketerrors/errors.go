package marketerrors

import "errors"

// Repository-level errors
var (
	ErrGigNotFound  = errors.New("gig not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrDuplicateBid = errors.New("freelancer already bid on gig")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrGigNotOpen         = errors.New("gig is not open")
	ErrBidNotPending      = errors.New("bid is not pending")
	ErrForbidden          = errors.New("not allowed")
	ErrUnauthenticated    = errors.New("unauthenticated")
)
