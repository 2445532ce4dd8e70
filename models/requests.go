package models

// LoginRequest is the credential pair posted to establish a session.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest asks for a reset link to be mailed to the account
// matching the given username or email. At least one identifier must be
// present; when both are set the username is tried first.
type PasswordResetRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Username,omitempty,email"`
}

// PasswordResetUpdateRequest carries the replacement password when a reset
// is consumed.
type PasswordResetUpdateRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}
