package service

import (
	"context"
	"time"

	apperrors "github.com/launchkit/signup-server-go/internal/errors"
	"github.com/launchkit/signup-server-go/internal/model"
	"github.com/launchkit/signup-server-go/internal/repository"
	"github.com/launchkit/signup-server-go/internal/util"
)

type AdminService struct {
	sessionRepo    repository.SessionRepository
	subscriberRepo repository.SubscriberRepository
	creds          *AdminCredentials
	resetCode      string
	sessionSecret  string
	sessionTTL     time.Duration
}

func NewAdminService(
	sessionRepo repository.SessionRepository,
	subscriberRepo repository.SubscriberRepository,
	creds *AdminCredentials,
	resetCode, sessionSecret string,
	sessionTTL time.Duration,
) *AdminService {
	return &AdminService{
		sessionRepo:    sessionRepo,
		subscriberRepo: subscriberRepo,
		creds:          creds,
		resetCode:      resetCode,
		sessionSecret:  sessionSecret,
		sessionTTL:     sessionTTL,
	}
}

// Login checks the submitted credentials against the current in-memory
// credential and mints a session token on success. An empty token with a nil
// error means the credentials did not match.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.creds.Verify(username, password) {
		return "", nil
	}

	token, err := util.GenerateToken()
	if err != nil {
		return "", err
	}

	tokenHash := util.HmacSHA256(s.sessionSecret, token)
	_, err = s.sessionRepo.Create(ctx, model.CreateSessionParams{
		TokenHash: tokenHash,
		TTL:       s.sessionTTL,
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *AdminService) Logout(ctx context.Context, token string) error {
	tokenHash := util.HmacSHA256(s.sessionSecret, token)
	return s.sessionRepo.DeleteByTokenHash(ctx, tokenHash)
}

func (s *AdminService) FindSession(ctx context.Context, token string) (*model.Session, error) {
	tokenHash := util.HmacSHA256(s.sessionSecret, token)
	return s.sessionRepo.FindByTokenHash(ctx, tokenHash)
}

func (s *AdminService) GetSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	subscribers, err := s.subscriberRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if subscribers == nil {
		subscribers = []model.Subscriber{}
	}
	return subscribers, nil
}

type Stats struct {
	Subscribers int `json:"subscribers"`
}

func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	count, err := s.subscriberRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return &Stats{Subscribers: count}, nil
}

type ResetPasswordParams struct {
	Username        string
	ResetCode       string
	NewPassword     string
	ConfirmPassword string
}

const minPasswordLength = 6

// ResetPassword validates in a fixed order, short-circuiting on the first
// failure, and overwrites the in-memory admin password on success. The change
// holds until the process restarts.
func (s *AdminService) ResetPassword(ctx context.Context, params ResetPasswordParams) error {
	if params.Username != s.creds.Username() {
		return apperrors.ValidationError("Invalid username.")
	}
	if !util.ConstantTimeEqual(params.ResetCode, s.resetCode) {
		return apperrors.ValidationError("Invalid reset code.")
	}
	if len(params.NewPassword) < minPasswordLength {
		return apperrors.ValidationError("New password must be at least 6 characters.")
	}
	if params.NewPassword != params.ConfirmPassword {
		return apperrors.ValidationError("Passwords do not match.")
	}

	s.creds.SetPassword(params.NewPassword)
	return nil
}
