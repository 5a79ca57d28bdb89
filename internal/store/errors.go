package store

import "errors"

// Sentinel errors so callers can tell "duplicate" from "not found" from
// "already a member" instead of guessing at a nil result.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateRequest   = errors.New("a pending join request already exists")
	ErrAlreadyMember      = errors.New("user is already a player at this table")
)
