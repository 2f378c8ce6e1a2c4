package session

import (
	"encoding/base64"
	"net/http"
)

// flashCookieName is the name of the one-shot notification cookie.
const flashCookieName = "notes_flash"

// SetFlash stores a one-shot notification message for the next rendered page.
// The message is base64url-encoded because cookie values cannot carry spaces
// or punctuation verbatim.
func SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads the pending notification, clears the cookie and returns the
// decoded message. Returns ok=false when there is no pending notification or
// the cookie value cannot be decoded.
func PopFlash(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return "", false
	}

	return string(decoded), true
}
