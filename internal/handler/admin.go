package handler

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/launchkit/signup-server-go/internal/audit"
	"github.com/launchkit/signup-server-go/internal/middleware"
	"github.com/launchkit/signup-server-go/internal/service"
)

type AdminHandler struct {
	adminService      *service.AdminService
	sessionMiddleware func(http.Handler) http.Handler
	staticDir         string
	sessionTTL        time.Duration
	isProduction      bool
}

func NewAdminHandler(
	adminService *service.AdminService,
	sessionMiddleware func(http.Handler) http.Handler,
	staticDir string,
	sessionTTL time.Duration,
	isProduction bool,
) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		sessionMiddleware: sessionMiddleware,
		staticDir:         staticDir,
		sessionTTL:        sessionTTL,
		isProduction:      isProduction,
	}
}

func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/forgot-password", h.ForgotPasswordPage)
	r.Post("/forgot-password", h.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(h.sessionMiddleware)
		r.Get("/admin", h.AdminPage)
		r.Get("/api/submissions", h.ListSubmissions)
		r.Get("/api/stats", h.Stats)
	})

	return r
}

// GET /login
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "login.html"))
}

// POST /login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeHTML(w, http.StatusBadRequest, htmlRetry("Invalid login request.", "/login", "Try again"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.adminService.Login(r.Context(), username, password)
	if err != nil {
		log.Error().Err(err).Msg("admin login error")
		writeHTML(w, http.StatusInternalServerError, htmlRetry("Login failed.", "/login", "Try again"))
		return
	}

	if token == "" {
		audit.LogFromRequest(r, audit.EventLoginFailure)
		writeHTML(w, http.StatusUnauthorized, htmlRetry("Invalid username or password.", "/login", "Try again"))
		return
	}

	audit.LogFromRequest(r, audit.EventLoginSuccess)
	middleware.SetSessionCookie(w, token, h.sessionTTL, h.isProduction)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// POST /logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.AdminSessionCookie)
	if err == nil && cookie.Value != "" {
		if err := h.adminService.Logout(r.Context(), cookie.Value); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
	}

	audit.LogFromRequest(r, audit.EventLogout)
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// GET /forgot-password
func (h *AdminHandler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "forgot-password.html"))
}

// POST /forgot-password
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeHTML(w, http.StatusBadRequest, htmlRetry("Invalid reset request.", "/forgot-password", "Try again"))
		return
	}

	err := h.adminService.ResetPassword(r.Context(), service.ResetPasswordParams{
		Username:        r.PostFormValue("username"),
		ResetCode:       r.PostFormValue("resetCode"),
		NewPassword:     r.PostFormValue("newPassword"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	})
	if err != nil {
		audit.LogFromRequest(r, audit.EventResetFailure)
		writeHTML(w, http.StatusBadRequest, htmlRetry(userMessage(err), "/forgot-password", "Try again"))
		return
	}

	audit.LogFromRequest(r, audit.EventPasswordReset)
	writeHTML(w, http.StatusOK, htmlRetry("Password updated successfully.", "/login", "Go to login"))
}

// GET /admin
func (h *AdminHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "admin.html"))
}

// GET /api/submissions
func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.adminService.GetSubscribers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list submissions")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Database error."})
		return
	}

	writeJSON(w, http.StatusOK, subscribers)
}

// GET /api/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to get stats")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Database error."})
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
