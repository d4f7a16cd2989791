package middleware

import (
	"context"
	"net/http"

	"github.com/kunukumikhil-byte/being-connected1/internal/auth"
	"github.com/kunukumikhil-byte/being-connected1/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// CookieName is the browser cookie holding the signed session token.
const CookieName = "session"

type sessionInfo struct {
	Token   string
	Session session.Session
}

// RequireSession resolves the session cookie and redirects to /login when it
// is missing, tampered with, or stale. An unauthenticated request is an
// authorization failure, not an error page.
func RequireSession(signer *auth.CookieSigner, sessions *session.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		token, err := signer.Verify(cookie.Value)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		sess, ok := sessions.Get(token)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sessionInfo{Token: token, Session: sess})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFrom returns the session attached by RequireSession.
func SessionFrom(ctx context.Context) (session.Session, bool) {
	info, ok := ctx.Value(sessionKey).(sessionInfo)
	return info.Session, ok
}

// TokenFrom returns the session token attached by RequireSession, for
// handlers that need to tear the session down.
func TokenFrom(ctx context.Context) string {
	info, _ := ctx.Value(sessionKey).(sessionInfo)
	return info.Token
}
