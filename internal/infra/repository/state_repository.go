// Package repository provides the redis-backed notification state store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/subplan/notification-dispatch/internal/domain"
)

const (
	stateKeyPrefix = "notify:state:"

	// States only matter while the date they describe is within the
	// lookahead horizon, plus slack for late feed corrections.
	stateTTL = 14 * 24 * time.Hour
)

type stateRecord struct {
	UserID      string    `json:"user_id"`
	DateKey     string    `json:"date_key"`
	Fingerprint string    `json:"fingerprint"`
	MatchCount  int       `json:"match_count"`
	SentAt      time.Time `json:"sent_at"`
}

type stateRepository struct {
	client *redis.Client
}

func NewNotificationStateRepository(client *redis.Client) domain.NotificationStateRepository {
	return &stateRepository{
		client: client,
	}
}

func stateKey(userID, dateKey string) string {
	return stateKeyPrefix + userID + ":" + dateKey
}

func (r *stateRepository) GetState(ctx context.Context, userID, dateKey string) (*domain.NotificationState, error) {
	data, err := r.client.Get(ctx, stateKey(userID, dateKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrStateNotFound
		}
		return nil, err
	}

	var record stateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidStateData
	}

	return &domain.NotificationState{
		UserID:      record.UserID,
		DateKey:     record.DateKey,
		Fingerprint: record.Fingerprint,
		MatchCount:  record.MatchCount,
		SentAt:      record.SentAt,
	}, nil
}

func (r *stateRepository) SaveState(ctx context.Context, state *domain.NotificationState) error {
	if state == nil {
		return ErrInvalidStateData
	}

	record := stateRecord{
		UserID:      state.UserID,
		DateKey:     state.DateKey,
		Fingerprint: state.Fingerprint,
		MatchCount:  state.MatchCount,
		SentAt:      state.SentAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidStateData
	}

	return r.client.Set(ctx, stateKey(state.UserID, state.DateKey), data, stateTTL).Err()
}

func (r *stateRepository) DeleteState(ctx context.Context, userID, dateKey string) error {
	return r.client.Del(ctx, stateKey(userID, dateKey)).Err()
}
