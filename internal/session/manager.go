// Package session manages browser sessions for the notes application.
//
// A session is a signed HMAC-SHA256 JWT carried in an HttpOnly cookie. The
// token's subject claim holds the authenticated username and a custom "csrf"
// claim holds a per-session anti-forgery value that rendered forms echo back
// as a hidden field.
package session

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/kmdeakers/go-notes/internal/config"
	"github.com/kmdeakers/go-notes/internal/utils"
	"github.com/kmdeakers/go-notes/models"
)

// CookieName is the name of the session cookie.
const CookieName = "notes_session"

// FormTokenCookieName is the name of the double-submit cookie protecting the
// registration and login forms, which run before any session exists.
const FormTokenCookieName = "notes_csrf"

// Manager issues, validates and revokes session cookies.
type Manager struct {
	signKey  string
	issuer   string
	duration time.Duration
	secure   bool
	uuidGen  *utils.UUIDGenerator
}

// NewManager constructs a [Manager] from the application configuration.
func NewManager(cfg config.App) *Manager {
	return &Manager{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		secure:   cfg.SecureCookies,
		uuidGen:  utils.NewUUIDGenerator(),
	}
}

// SetIdentity starts a new session for the given username and writes the
// session cookie to the response.
//
// A fresh CSRF value is generated for every session, so logging in again
// invalidates forms rendered under the previous session.
func (m *Manager) SetIdentity(w http.ResponseWriter, username string) (models.SessionToken, error) {
	csrf := m.uuidGen.Generate()

	token, err := utils.GenerateSessionToken(m.issuer, username, csrf, m.duration, m.signKey)
	if err != nil {
		return models.SessionToken{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(m.duration.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return token, nil
}

// ClearIdentity removes the session cookie. Clearing an absent session is a
// no-op, so logout is idempotent.
func (m *Manager) ClearIdentity(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// CurrentIdentity extracts and validates the session token from the request
// cookie.
//
// Returns ok=false for a missing cookie, a bad signature, a wrong issuer or
// an expired token. An invalid session is indistinguishable from no session.
func (m *Manager) CurrentIdentity(r *http.Request) (models.SessionToken, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return models.SessionToken{}, false
	}

	token, err := utils.ValidateAndParseSessionToken(cookie.Value, m.signKey, m.issuer)
	if err != nil {
		return models.SessionToken{}, false
	}

	return token, true
}

// VerifyCSRF compares the submitted anti-forgery value against the one bound
// to the session. The comparison is constant-time.
func (m *Manager) VerifyCSRF(session models.SessionToken, submitted string) bool {
	if session.CSRF == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(session.CSRF), []byte(submitted)) == 1
}

// EnsureFormToken returns the anti-forgery token for the pre-login forms,
// issuing the double-submit cookie when the visitor does not carry one yet.
// The token is random per visitor; the POST handler checks that the cookie
// and the hidden form field agree.
func (m *Manager) EnsureFormToken(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(FormTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	token := m.uuidGen.Generate()
	http.SetCookie(w, &http.Cookie{
		Name:     FormTokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return token
}

// VerifyFormToken compares the submitted pre-login anti-forgery value against
// the double-submit cookie. The comparison is constant-time.
func (m *Manager) VerifyFormToken(r *http.Request, submitted string) bool {
	cookie, err := r.Cookie(FormTokenCookieName)
	if err != nil || cookie.Value == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(submitted)) == 1
}

// IsAuthorized reports whether the session identity may act on a resource
// owned by owner. It is total over all input pairs: an anonymous identity is
// authorized for nothing.
func IsAuthorized(identity, owner string) bool {
	return identity != "" && identity == owner
}
