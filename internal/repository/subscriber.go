package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/launchkit/signup-server-go/internal/model"
)

type SubscriberRepository interface {
	Create(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error)
	FindAll(ctx context.Context) ([]model.Subscriber, error)
	Count(ctx context.Context) (int, error)
}

// subscriberDB is an interface satisfied by both *sqlx.DB and *sqlx.Tx
type subscriberDB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type subscriberRepo struct {
	db subscriberDB
}

func NewSubscriberRepository(db *sqlx.DB) SubscriberRepository {
	return &subscriberRepo{db: db}
}

func (r *subscriberRepo) Create(ctx context.Context, params model.CreateSubscriberParams) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	err := r.db.GetContext(ctx, &subscriber, `
		INSERT INTO subscribers (first_name, last_name, email, newsletter_opt_in)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, params.FirstName, params.LastName, params.Email, params.NewsletterOptIn)
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *subscriberRepo) FindAll(ctx context.Context) ([]model.Subscriber, error) {
	var subscribers []model.Subscriber
	err := r.db.SelectContext(ctx, &subscribers, `
		SELECT * FROM subscribers
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (r *subscriberRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM subscribers`)
	return count, err
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (duplicate email).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
