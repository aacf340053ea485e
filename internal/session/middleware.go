package session

import (
	"context"
	"net/http"
)

// contextKey is unexported so only this package can read or write the
// session value in a request context.
type contextKey struct{}

var sessionKey contextKey

// FromContext returns the session stored by the middleware, or (nil, false)
// for an anonymous request.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	return sess, ok && sess != nil
}

// FromRequest resolves the request's session cookie against the store.
func (s *Store) FromRequest(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return s.Get(cookie.Value)
}

// Require enforces an authenticated session. Anonymous requests get
// 401 with the same body shape the rest of the API uses; authenticated
// requests continue with the session in the context.
func Require(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := store.FromRequest(r)
			if !ok {
				writeDenied(w, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin enforces an authenticated session whose account carries the
// admin flag. Both the anonymous and the non-admin case answer 403 — the
// admin surface does not reveal whether credentials were the problem.
func RequireAdmin(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := store.FromRequest(r)
			if !ok || !sess.IsAdmin {
				writeDenied(w, http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetCookie attaches the session token to the response. HttpOnly keeps it
// away from page scripts; SameSite=Lax stops cross-site POSTs from riding
// the session.
func (s *Store) SetCookie(w http.ResponseWriter, sess *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie tells the browser to drop the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeDenied(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"Unauthorized"}`))
}
