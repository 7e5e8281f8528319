package model

import (
	"time"
)

// Session is the server-side record behind an admin cookie. It is a typed
// record rather than a bare flag so future fields extend it without redesign.
type Session struct {
	TokenHash     string    `json:"-"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type CreateSessionParams struct {
	TokenHash string
	TTL       time.Duration
}
