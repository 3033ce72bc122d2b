package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	gsessions "github.com/gorilla/sessions"

	"inkwell/app/models"
	"inkwell/app/services"
	"inkwell/app/session"
)

type contextKey string

const userKey contextKey = "current_user"

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s took %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CurrentUser restores the authenticated identity, if any, from the request
// session and attaches it to the request context. A session holding a stale
// user id passes through as anonymous; a storage failure during the lookup
// fails the request.
func CurrentUser(store gsessions.Store, authService *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Get(r, session.Name)
			if err != nil {
				log.Printf("session load error: %v", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			id, ok := sess.Values[session.UserIDKey].(uint)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			user, err := authService.CurrentUser(id)
			if err != nil {
				log.Printf("storage error: %v", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the request's authenticated user, or nil.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// RequireAuth redirects requests without an authenticated identity to the
// login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
