package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"library-system/internal/models"
)

type redisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository stores sessions as redis hashes keyed by
// "session:<token>" with a TTL matching the session expiry.
func NewRedisSessionRepository(client *redis.Client) SessionRepository {
	return &redisSessionRepository{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *redisSessionRepository) Create(ctx context.Context, session *models.Session) error {
	fields := map[string]any{
		"user_id":    session.UserID,
		"username":   session.Username,
		"role":       session.Role,
		"created_at": session.CreatedAt.Format(time.RFC3339),
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	}

	key := sessionKey(session.Token)
	if err := r.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session ttl: %w", err)
	}

	return nil
}

func (r *redisSessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	data, err := r.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}

	userID, err := strconv.ParseInt(data["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session user id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, data["created_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt session created_at: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339, data["expires_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt session expires_at: %w", err)
	}

	return &models.Session{
		Token:     token,
		UserID:    userID,
		Username:  data["username"],
		Role:      data["role"],
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: redis evicts sessions through the key TTL.
func (r *redisSessionRepository) DeleteExpired(ctx context.Context) error {
	return nil
}

// OpenRedis connects a client from a redis:// URL and verifies it with a ping.
func OpenRedis(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
