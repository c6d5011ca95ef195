package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lamphouse/m/domain"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list clients")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"clients": clients,
		"flash":   popFlash(w, r),
	})
}

// newClientForm feeds the external form page an empty scaffold.
func (h *Handler) newClientForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"client": domain.ClientFields{},
		"flash":  popFlash(w, r),
	})
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	fields, err := clientFieldsFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "malformed form data")
		return
	}
	if err := h.clients.Create(r.Context(), fields); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create client")
		return
	}
	setFlash(w, flashSuccess, "New client added!")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *Handler) editClientForm(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	client, err := h.clients.Get(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		h.redirectClientNotFound(w, r)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load client")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"client": client,
		"flash":  popFlash(w, r),
	})
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	if _, err := h.clients.Get(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.redirectClientNotFound(w, r)
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to load client")
		return
	}
	fields, err := clientFieldsFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "malformed form data")
		return
	}
	if err := h.clients.Update(r.Context(), id, fields); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update client")
		return
	}
	setFlash(w, flashSuccess, "Client updated!")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	// Deleting a missing id affects zero rows; still a redirect, not an error.
	if err := h.clients.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to delete client")
		return
	}
	setFlash(w, flashInfo, "Client deleted.")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

// redirectClientNotFound implements the soft not-found path: back to the list
// with a notification, never an error response.
func (h *Handler) redirectClientNotFound(w http.ResponseWriter, r *http.Request) {
	setFlash(w, flashError, "Client not found.")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func clientIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
}

// clientFieldsFromForm extracts the four mutable fields. Absent fields
// submit as empty strings; presence is not validated here.
func clientFieldsFromForm(r *http.Request) (domain.ClientFields, error) {
	if err := r.ParseForm(); err != nil {
		return domain.ClientFields{}, err
	}
	return domain.ClientFields{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
	}, nil
}
