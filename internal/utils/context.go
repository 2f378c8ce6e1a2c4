// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT session token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/kmdeakers/go-notes/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key used to store the authenticated username in the
// context. Used together with GetUsernameFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// SessionCtxKey is the key used to store the parsed session token in the
// context. Used together with GetSessionFromContext for type-safe retrieval.
var SessionCtxKey = contextKey("session")

// GetUsernameFromContext retrieves the authenticated username from the context.
//
// Returns the username and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	username, ok := utils.GetUsernameFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// GetSessionFromContext retrieves the parsed session token from the context.
//
// Returns the token and an ok flag following the same convention as
// [GetUsernameFromContext].
func GetSessionFromContext(ctx context.Context) (models.SessionToken, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.SessionToken)
	return session, ok
}
