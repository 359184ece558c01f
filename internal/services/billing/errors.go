package billing

import "errors"

// Service errors
var (
	ErrUnknownPlan       = errors.New("unknown plan id")
	ErrCheckoutFailed    = errors.New("checkout session creation failed")
	ErrMissingStripeKey  = errors.New("stripe secret key not configured")
	ErrUnknownSubscriber = errors.New("subscription not linked to a user")
)
