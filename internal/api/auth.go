package api

import (
	"database/sql"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// home routes to the dashboard when a session is present, the login flow
// otherwise.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Read(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// loginForm feeds the external login page: just the pending flash, if any.
func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{"flash": popFlash(w, r)})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "malformed form data")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.ByUsername(r.Context(), username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusInternalServerError, "unable to look up user")
		return
	}
	// Unknown user and wrong password produce the same flash: no username
	// enumeration through this path.
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		setFlash(w, flashError, "Invalid username or password")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Issue(w, user.ID, user.Username); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create session")
		return
	}
	setFlash(w, flashSuccess, "Logged in successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// logout clears the session unconditionally; logging out twice is safe.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	setFlash(w, flashInfo, "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ident := identityFrom(r)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"username": ident.Username,
		"flash":    popFlash(w, r),
	})
}
