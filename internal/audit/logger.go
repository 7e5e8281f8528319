package audit

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type EventType string

const (
	EventLoginSuccess  EventType = "login_success"
	EventLoginFailure  EventType = "login_failure"
	EventLogout        EventType = "logout"
	EventPasswordReset EventType = "password_reset"
	EventResetFailure  EventType = "password_reset_failure"
)

type Event struct {
	Type      EventType
	IP        string
	UserAgent string
}

func Log(event Event) {
	logger := log.With().
		Str("audit", "security").
		Str("event_type", string(event.Type)).
		Time("timestamp", time.Now()).
		Logger()

	if event.IP != "" {
		logger = logger.With().Str("ip", event.IP).Logger()
	}
	if event.UserAgent != "" {
		logger = logger.With().Str("user_agent", event.UserAgent).Logger()
	}

	logger.Info().Msg("security audit event")
}

func LogFromRequest(r *http.Request, eventType EventType) {
	Log(Event{
		Type:      eventType,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
