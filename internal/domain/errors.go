package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the workflow core. Handlers map these to HTTP
// statuses with errors.Is; services wrap them with entity context.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid input")

	// ErrPaywall is the Forbidden subtype for free-tier gating on bids
	// and custom requests.
	ErrPaywall = fmt.Errorf("%w: upgrade to Pro or VIP", ErrForbidden)
)
