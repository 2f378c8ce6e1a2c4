package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps the JWT carried by the session cookie.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be set as the session cookie value.
//
// Username is a cached copy of the "sub" (subject) claim. It is populated
// during token construction and after successful parsing, and identifies
// which user the session is authenticated as.
type SessionToken struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// CSRF is the per-session anti-forgery token. It is embedded in every
	// rendered form as a hidden field and compared against the submitted
	// value on each mutating POST.
	CSRF string `json:"csrf"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [SessionToken.String] instead.
	SignedString string `json:"-"`

	// Username is the session identity extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	Username string `json:"-"`
}

// GetUsername extracts the session identity from the token's "sub" (subject)
// claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *SessionToken) GetUsername() (string, error) {
	username, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from token: %w", err)
	}
	if username == "" {
		return "", fmt.Errorf("empty subject in session token")
	}

	return username, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *SessionToken) String() string {
	return t.SignedString
}
