package model

import "time"

// User is a registered account. PasswordHash is opaque to everything except
// the password hasher that produced it.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
