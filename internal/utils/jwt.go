package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kmdeakers/go-notes/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT session token with the
// given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username the session belongs to
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - csrf:            an opaque per-session anti-forgery value
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	username      - the user the session is issued for
//	csrf          - random value echoed back by forms for CSRF checks
//	tokenDuration - how long the session remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.SessionToken - contains the signed token string and the jwt.Token object
//	error               - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("go-notes", "alice", csrf, 12*time.Hour, "secret")
func GenerateSessionToken(issuer, username, csrf string, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || username == "" || csrf == "" || tokenDuration == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &models.SessionToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		CSRF: csrf,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{
		Token:        token,
		CSRF:         csrf,
		SignedString: tokenString,
		Username:     username,
	}, nil
}

// ValidateAndParseSessionToken validates the given JWT session token string
// and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Parameters:
//
//	tokenString   - the raw signed JWT string to validate and parse
//	tokenSignKey  - secret key used to verify the token signature
//	tokenIssuer   - expected issuer value to validate against the iss claim
//
// Returns:
//
//	models.SessionToken - contains the parsed jwt.Token object, the username
//	                      from the subject claim and the csrf claim
//	error               - non-nil if validation fails or claims are missing
//
// Example usage:
//
//	token, err := utils.ValidateAndParseSessionToken(rawToken, "secret", "go-notes")
//	if err != nil {
//	    // handle invalid or expired session
//	}
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	claims := &models.SessionToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	username, err := token.Claims.GetSubject()
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if username == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}

	return models.SessionToken{
		Token:        token,
		CSRF:         claims.CSRF,
		SignedString: tokenString,
		Username:     username,
	}, nil
}
