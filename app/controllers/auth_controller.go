package controllers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	gsessions "github.com/gorilla/sessions"

	"inkwell/app/services"
	"inkwell/app/session"
	"inkwell/app/views"
)

// AuthController serves the login page and processes login attempts.
type AuthController struct {
	authService *services.AuthService
	store       gsessions.Store
	templates   map[string]*template.Template
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, store gsessions.Store) *AuthController {
	return &AuthController{
		authService: authService,
		store:       store,
		templates:   views.Load(),
	}
}

// ShowLogin handles GET /login, rendering the form with any pending flash
// error. Reading the flash consumes it, so the session is saved again.
func (ac *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	sess, _ := ac.store.Get(r, session.Name)

	var message string
	if flashes := sess.Flashes("error"); len(flashes) > 0 {
		if msg, ok := flashes[0].(string); ok {
			message = msg
		}
	}
	if err := sess.Save(r, w); err != nil {
		log.Printf("session save error: %v", err)
	}

	data := struct{ Message string }{Message: message}
	if err := ac.templates["login"].ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Login handles POST /login. Bad credentials redirect back to the form with
// a flash error; only a storage failure produces a server error.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	body := parseBody(r)
	user, err := ac.authService.Authenticate(stringField(body, "username"), stringField(body, "password"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sess, _ := ac.store.Get(r, session.Name)
			sess.AddFlash("Invalid username or password.", "error")
			if err := sess.Save(r, w); err != nil {
				log.Printf("session save error: %v", err)
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		sendStorageError(w, err)
		return
	}

	sess, _ := ac.store.Get(r, session.Name)
	sess.Values[session.UserIDKey] = user.ID
	if err := sess.Save(r, w); err != nil {
		sendStorageError(w, err)
		return
	}
	http.Redirect(w, r, "/posts", http.StatusFound)
}

// Logout handles GET /logout, destroying the session.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := ac.store.Get(r, session.Name)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		log.Printf("session save error: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
