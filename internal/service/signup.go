package service

import (
	"context"

	apperrors "github.com/launchkit/signup-server-go/internal/errors"
	"github.com/launchkit/signup-server-go/internal/model"
	"github.com/launchkit/signup-server-go/internal/repository"
)

// NewsletterOptInValue is the only newsletter value that counts as consent.
// Any other non-empty value is an explicit opt-out, not a validation error.
const NewsletterOptInValue = "in"

type SignupService struct {
	subscriberRepo repository.SubscriberRepository
}

func NewSignupService(subscriberRepo repository.SubscriberRepository) *SignupService {
	return &SignupService{subscriberRepo: subscriberRepo}
}

type SubmitParams struct {
	FirstName  string
	LastName   string
	Email      string
	Newsletter string
}

// Submit validates a landing-page submission and inserts one subscriber row.
// A failed insert is surfaced to the caller, never retried.
func (s *SignupService) Submit(ctx context.Context, params SubmitParams) (*model.Subscriber, error) {
	if params.FirstName == "" || params.LastName == "" || params.Email == "" || params.Newsletter == "" {
		return nil, apperrors.ValidationError("Please fill in all fields.")
	}

	subscriber, err := s.subscriberRepo.Create(ctx, model.CreateSubscriberParams{
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Email:           params.Email,
		NewsletterOptIn: params.Newsletter == NewsletterOptInValue,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("This email has already been submitted.").WithCause(err)
		}
		return nil, apperrors.Database(err)
	}

	return subscriber, nil
}
