package api

import (
	"net/http"
	"net/url"
	"strings"
)

// Flash categories understood by the presentation layer.
const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

const flashCookie = "lamphouse_flash"

// Flash is a one-shot notification carried to the next page view.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// setFlash queues a notification for the next GET page. A later setFlash in
// the same request wins.
func setFlash(w http.ResponseWriter, category, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending notification, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(decoded, "|")
	if !ok {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
