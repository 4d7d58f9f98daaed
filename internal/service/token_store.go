package service

import (
	"context"
	"fmt"
	"time"

	"hospital-records-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefixes for issued tokens
const (
	accessTokenKeyPrefix  = "access_token:"
	refreshTokenKeyPrefix = "refresh_token:"
)

// TokenStore tracks issued token ids. A token is only accepted while its id
// is present in the store; revocation is deletion.
type TokenStore interface {
	Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type redisTokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisTokenStore(client *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{
		client: client,
		log:    log,
	}
}

func tokenKey(userID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	prefix := accessTokenKeyPrefix
	if tokenType == jwt.RefreshToken {
		prefix = refreshTokenKeyPrefix
	}
	return fmt.Sprintf("%s%s:%s", prefix, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKey(userID, tokenID, tokenType), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store %s token in Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(userID, tokenID, tokenType)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	if err := s.client.Del(ctx, tokenKey(userID, tokenID, tokenType)).Err(); err != nil {
		s.log.Warnf("Failed to delete %s token from Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

// RevokeAll deletes every token issued to the user, both access and refresh
func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	patterns := []string{
		fmt.Sprintf("%s%s:*", accessTokenKeyPrefix, userID.String()),
		fmt.Sprintf("%s%s:*", refreshTokenKeyPrefix, userID.String()),
	}

	for _, pattern := range patterns {
		keys, err := s.client.Keys(ctx, pattern).Result()
		if err != nil {
			s.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}
