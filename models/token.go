package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the signed JWT carried by the session cookie.
//
// The token is intentionally thin: its only meaningful claim is the "sub"
// (subject), which holds the opaque server-side session id. All session
// state — user binding, creation time — lives in the sessions table; the
// JWT merely makes the cookie value tamper-evident.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature), ready to be stored in
	// the session cookie.
	SignedString string `json:"-"`

	// SessionID is the session identifier extracted from the "sub" claim.
	// Internal server-side cache; never serialized.
	SessionID string `json:"-"`
}

// GetSessionID extracts the session identifier from the token's "sub"
// (subject) claim.
//
// Returns an error if the subject claim is missing or cannot be read.
func (t *Token) GetSessionID() (string, error) {
	return t.GetSubject()
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
