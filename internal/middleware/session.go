package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/launchkit/signup-server-go/internal/model"
	"github.com/launchkit/signup-server-go/internal/repository"
	"github.com/launchkit/signup-server-go/internal/util"
)

const (
	AdminSessionCookie = "admin_session"
	LoginPath          = "/login"
)

type contextKey string

const AdminSessionContextKey contextKey = "adminSession"

func GetAdminSession(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(AdminSessionContextKey).(*model.Session); ok {
		return session
	}
	return nil
}

// SessionMiddleware gates protected resources. An anonymous request is
// redirected to the login page rather than erroring; only a session store
// failure surfaces as 500.
type SessionMiddleware struct {
	sessionRepo   repository.SessionRepository
	sessionSecret string
}

func NewSessionMiddleware(sessionRepo repository.SessionRepository, sessionSecret string) *SessionMiddleware {
	return &SessionMiddleware{
		sessionRepo:   sessionRepo,
		sessionSecret: sessionSecret,
	}
}

func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(AdminSessionCookie)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}

		tokenHash := util.HmacSHA256(m.sessionSecret, cookie.Value)
		session, err := m.sessionRepo.FindByTokenHash(r.Context(), tokenHash)
		if err != nil {
			log.Error().Err(err).Msg("session middleware: store error")
			http.Error(w, "Session validation failed", http.StatusInternalServerError)
			return
		}

		if session == nil || !session.Authenticated {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), AdminSessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminSessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   AdminSessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
