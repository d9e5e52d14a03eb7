package billing

import "errors"

var (
	// ErrUnknownPack rejects checkout requests for pack IDs outside the
	// fixed catalog.
	ErrUnknownPack = errors.New("unknown credit pack")

	// ErrInvalidSignature means the webhook payload failed Stripe's
	// signature check and must be discarded.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidEvent covers webhook payloads that verified but carry an
	// unusable body.
	ErrInvalidEvent = errors.New("invalid webhook event payload")
)
