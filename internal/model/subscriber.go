package model

import (
	"time"
)

type Subscriber struct {
	ID              int64     `db:"id" json:"id"`
	FirstName       string    `db:"first_name" json:"firstName"`
	LastName        string    `db:"last_name" json:"lastName"`
	Email           string    `db:"email" json:"email"`
	NewsletterOptIn bool      `db:"newsletter_opt_in" json:"newsletterOptIn"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type CreateSubscriberParams struct {
	FirstName       string
	LastName        string
	Email           string
	NewsletterOptIn bool
}
