package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/launchkit/signup-server-go/internal/errors"
	"github.com/launchkit/signup-server-go/internal/httputil"
	"github.com/launchkit/signup-server-go/internal/service"
)

type SignupHandler struct {
	signupService *service.SignupService
}

func NewSignupHandler(signupService *service.SignupService) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
	}
}

// POST /api/submit
func (h *SignupHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Email      string `json:"email"`
		Newsletter string `json:"newsletter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Please fill in all fields.")
		return
	}

	_, err := h.signupService.Submit(r.Context(), service.SubmitParams{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Newsletter: req.Newsletter,
	})
	if err != nil {
		if apperrors.GetCode(err) == apperrors.ErrCodeDatabase {
			log.Error().Err(err).Msg("failed to insert subscriber")
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Thank you and good luck.")
}
