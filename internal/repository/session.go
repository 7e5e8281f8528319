package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/launchkit/signup-server-go/internal/model"
	"github.com/launchkit/signup-server-go/internal/redis"
)

// SessionRepository stores admin sessions keyed by the HMAC hash of the
// cookie token. Expiry is enforced by the store itself, so a missing key
// covers both "never logged in" and "expired".
type SessionRepository interface {
	Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}

type sessionRepo struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepo{client: client}
}

func (r *sessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	now := time.Now()
	session := &model.Session{
		TokenHash:     params.TokenHash,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(params.TTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, redis.SessionKey(params.TokenHash), data, params.TTL).Err(); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *sessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	data, err := r.client.Get(ctx, redis.SessionKey(tokenHash)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	session.TokenHash = tokenHash
	return &session, nil
}

func (r *sessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return r.client.Del(ctx, redis.SessionKey(tokenHash)).Err()
}
