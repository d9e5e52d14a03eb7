package generating

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means no resolved user reached the orchestrator. The
	// middleware normally catches this first.
	ErrUnauthorized = errors.New("generation requires an authenticated user")

	// ErrInvalidRequest covers malformed requests: unknown kinds, missing
	// platforms, missing URL for analysis kinds.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrInsufficientCredit is the sentinel behind InsufficientCreditError,
	// usable with errors.Is.
	ErrInsufficientCredit = errors.New("insufficient credit balance")

	// ErrPromptNotConfigured means the app_prompts table is missing a
	// system template. A deployment problem, not a user error.
	ErrPromptNotConfigured = errors.New("prompt template not configured")
)

// InsufficientCreditError carries the amounts so the caller can tell the
// user what a top-up needs to cover.
type InsufficientCreditError struct {
	Required  int
	Available int
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit: required %d, available %d", e.Required, e.Available)
}

func (e *InsufficientCreditError) Is(target error) bool {
	return target == ErrInsufficientCredit
}
