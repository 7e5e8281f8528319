package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/launchkit/signup-server-go/internal/errors"
	"github.com/launchkit/signup-server-go/internal/model"
)

type mockSubscriberRepo struct {
	createFunc  func(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error)
	findAllFunc func(ctx context.Context) ([]model.Subscriber, error)
	countFunc   func(ctx context.Context) (int, error)
}

func (m *mockSubscriberRepo) Create(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Subscriber{
		ID:              1,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Email:           params.Email,
		NewsletterOptIn: params.NewsletterOptIn,
	}, nil
}

func (m *mockSubscriberRepo) FindAll(ctx context.Context) ([]model.Subscriber, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSubscriberRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func validParams() SubmitParams {
	return SubmitParams{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@x.com",
		Newsletter: "in",
	}
}

func TestSignupService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a valid submission", func(t *testing.T) {
		svc := NewSignupService(&mockSubscriberRepo{})

		subscriber, err := svc.Submit(ctx, validParams())
		require.NoError(t, err)
		assert.Equal(t, "ada@x.com", subscriber.Email)
		assert.True(t, subscriber.NewsletterOptIn)
	})

	t.Run("maps non-in newsletter values to opt-out", func(t *testing.T) {
		var created model.CreateSubscriberParams
		repo := &mockSubscriberRepo{
			createFunc: func(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error) {
				created = params
				return &model.Subscriber{}, nil
			},
		}
		svc := NewSignupService(repo)

		params := validParams()
		params.Newsletter = "out"
		_, err := svc.Submit(ctx, params)
		require.NoError(t, err)
		assert.False(t, created.NewsletterOptIn)
	})

	t.Run("missing fields never reach the datastore", func(t *testing.T) {
		fields := []func(*SubmitParams){
			func(p *SubmitParams) { p.FirstName = "" },
			func(p *SubmitParams) { p.LastName = "" },
			func(p *SubmitParams) { p.Email = "" },
			func(p *SubmitParams) { p.Newsletter = "" },
		}

		for _, clear := range fields {
			repoCalled := false
			repo := &mockSubscriberRepo{
				createFunc: func(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error) {
					repoCalled = true
					return nil, nil
				},
			}
			svc := NewSignupService(repo)

			params := validParams()
			clear(&params)

			_, err := svc.Submit(ctx, params)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(err))
			appErr, _ := apperrors.AsAppError(err)
			assert.Equal(t, "Please fill in all fields.", appErr.Message)
			assert.False(t, repoCalled)
		}
	})

	t.Run("duplicate email becomes a conflict", func(t *testing.T) {
		repo := &mockSubscriberRepo{
			createFunc: func(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error) {
				return nil, &pq.Error{Code: "23505", Constraint: "subscribers_email_key"}
			},
		}
		svc := NewSignupService(repo)

		_, err := svc.Submit(ctx, validParams())
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetCode(err))
		appErr, _ := apperrors.AsAppError(err)
		assert.Equal(t, "This email has already been submitted.", appErr.Message)
	})

	t.Run("other datastore failures become database errors", func(t *testing.T) {
		repo := &mockSubscriberRepo{
			createFunc: func(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error) {
				return nil, errors.New("connection reset")
			},
		}
		svc := NewSignupService(repo)

		_, err := svc.Submit(ctx, validParams())
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeDatabase, apperrors.GetCode(err))
		appErr, _ := apperrors.AsAppError(err)
		assert.Equal(t, "Database error.", appErr.Message)
	})
}
