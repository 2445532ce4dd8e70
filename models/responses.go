package models

// SuccessResponse is the generic success-shaped confirmation returned by
// operations that deliberately do not disclose their internal outcome
// (e.g. password-reset requests, which must not leak account existence).
type SuccessResponse struct {
	// Success is always true when the response is emitted; failures that
	// may be disclosed to the caller are reported via HTTP status codes
	// instead.
	Success bool `json:"success"`
}
