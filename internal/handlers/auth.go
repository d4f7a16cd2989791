package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kunukumikhil-byte/being-connected1/internal/auth"
	"github.com/kunukumikhil-byte/being-connected1/internal/middleware"
	"github.com/kunukumikhil-byte/being-connected1/internal/session"
	"github.com/kunukumikhil-byte/being-connected1/internal/store"
)

type AuthHandler struct {
	Store    store.Store
	Sessions *session.Store
	Signer   *auth.CookieSigner
}

// Signup renders the form on GET and creates the user on POST. A duplicate
// application number answers with a plain-text body and creates nothing.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, "signup.html", nil)
		return
	}

	name := r.FormValue("name")
	appNo := r.FormValue("application_number")
	password := r.FormValue("password")

	if _, err := h.Store.CreateUser(name, appNo, password); err != nil {
		if errors.Is(err, store.ErrDuplicateApplicationNumber) {
			fmt.Fprint(w, "Application number already exists!")
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// Login matches the credentials exactly as stored. Success creates a session
// and sets the signed cookie; failure answers with a plain-text body and sets
// nothing.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, "login.html", nil)
		return
	}

	appNo := r.FormValue("application_number")
	password := r.FormValue("password")

	user, err := h.Store.GetUserByCredentials(appNo, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			fmt.Fprint(w, "Invalid credentials")
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	token := h.Sessions.Create(user.ID, user.Name)
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    h.Signer.Sign(token),
		Path:     "/",
		HttpOnly: true,
	})

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout destroys the session unconditionally and expires the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Destroy(middleware.TokenFrom(r.Context()))
	http.SetCookie(w, &http.Cookie{
		Name:   middleware.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}
