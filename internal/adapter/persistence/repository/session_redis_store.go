package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"eligibility_hub/internal/domain/entities"
	"eligibility_hub/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "eligSession:"

// SessionRedisStore keeps the per-session submission copies in Redis.
//
// Key layout: eligSession:<session_id>:<submission_id> -> JSON submission.
// Every Put rewrites the whole record and refreshes the TTL, so session
// state expires on its own once the console user walks away.

type SessionRedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionStore = (*SessionRedisStore)(nil)

func NewSessionRedisStore(client *redis.Client, ttl time.Duration) *SessionRedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionRedisStore{client: client, ttl: ttl}
}

func (s *SessionRedisStore) Put(ctx context.Context, sessionID string, sub entities.Submission) error {
	if sub.ID == "" {
		return errors.New("cannot store submission without id")
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}
	return s.client.Set(ctx, sessionKey(sessionID, sub.ID), data, s.ttl).Err()
}

func (s *SessionRedisStore) Get(ctx context.Context, sessionID, submissionID string) (entities.Submission, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID, submissionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.Submission{}, nil
		}
		return entities.Submission{}, err
	}
	var sub entities.Submission
	if err := json.Unmarshal([]byte(data), &sub); err != nil {
		return entities.Submission{}, fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	return sub, nil
}

func (s *SessionRedisStore) ListTracked(ctx context.Context) ([]entities.TrackedSubmission, error) {
	return s.scan(ctx, sessionKeyPrefix+"*")
}

func (s *SessionRedisStore) Delete(ctx context.Context, sessionID, submissionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID, submissionID)).Err()
}

func (s *SessionRedisStore) ClearSession(ctx context.Context, sessionID string) error {
	keys, err := s.keys(ctx, sessionKeyPrefix+sessionID+":*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *SessionRedisStore) scan(ctx context.Context, pattern string) ([]entities.TrackedSubmission, error) {
	keys, err := s.keys(ctx, pattern)
	if err != nil {
		return nil, err
	}
	out := make([]entities.TrackedSubmission, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Expired between SCAN and GET.
				continue
			}
			return nil, err
		}
		var sub entities.Submission
		if err := json.Unmarshal([]byte(data), &sub); err != nil {
			continue
		}
		out = append(out, entities.TrackedSubmission{SessionID: sessionIDFromKey(key), Submission: sub})
	}
	return out, nil
}

func (s *SessionRedisStore) keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func sessionKey(sessionID, submissionID string) string {
	return sessionKeyPrefix + sessionID + ":" + submissionID
}

func sessionIDFromKey(key string) string {
	rest := strings.TrimPrefix(key, sessionKeyPrefix)
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		return rest[:i]
	}
	return rest
}
