// Package session implements signed-cookie browser sessions. The session
// "store" is the signed token itself: the server keeps no per-session state,
// so there is nothing to leak or clean up, and nothing to revoke short of
// rotating the signing secret.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie that carries the signed session token.
const CookieName = "lamphouse_session"

// DefaultTTL bounds how long an issued token verifies. The cookie itself has
// browser-session lifetime (no Max-Age); the source application never set a
// TTL, so this is our chosen default rather than inherited behavior.
const DefaultTTL = 12 * time.Hour

// Identity is the authenticated user bound to a session token.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager signing with secret and expiring tokens
// after DefaultTTL.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: DefaultTTL}
}

// Issue signs a token for the given user and sets it as an HttpOnly,
// SameSite=Lax session cookie on w.
func (m *Manager) Issue(w http.ResponseWriter, userID int64, username string) error {
	now := time.Now()
	c := claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read extracts and verifies the session cookie from r. A missing, malformed,
// expired, or wrongly-signed token reads as absent, never as an error:
// callers treat absent as unauthenticated.
func (m *Manager) Read(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Identity{}, false
	}
	var c claims
	token, err := jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}
	return Identity{UserID: c.UserID, Username: c.Username}, true
}

// Clear expires the session cookie. Clearing an already-cleared session is a
// no-op, so logout is idempotent.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
