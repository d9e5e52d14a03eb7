package domain

import "fmt"

// APIError is the error envelope returned by the provider on non-2xx responses.
type APIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s (%s/%s)", e.Error.Message, e.Error.Type, e.Error.Code)
}
