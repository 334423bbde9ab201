package models

import "time"

// User is a locally registered account. The credential is stored in the
// clear; this is an accepted prototype boundary, not a hardened auth system.
type User struct {
	Username   string    `json:"username"`
	Credential string    `json:"credential"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session is the single current authenticated identity.
type Session struct {
	Username string `json:"username"`
}
