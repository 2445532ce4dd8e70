package models

import "time"

// Session is a server-side association between an opaque session identifier
// and a user id. The identifier is regenerated on every successful login so
// a pre-authentication token can never be reused post-authentication.
type Session struct {
	// ID is the opaque session identifier (UUID). It is the only piece of
	// session state that ever leaves the server, wrapped in a signed cookie.
	ID string `json:"id"`

	// UserID is the account this session is bound to.
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp the session was established.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
