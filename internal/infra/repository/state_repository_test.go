package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
	"github.com/subplan/notification-dispatch/internal/testutil"
)

func TestStateRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)

	repo := NewNotificationStateRepository(client)

	state := &domain.NotificationState{
		UserID:      "user-1",
		DateKey:     "2026-01-07",
		Fingerprint: "abc123",
		MatchCount:  2,
		SentAt:      time.Date(2026, 1, 6, 18, 30, 0, 0, time.UTC),
	}

	if err := repo.SaveState(ctx, state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	got, err := repo.GetState(ctx, "user-1", "2026-01-07")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}

	if got.UserID != state.UserID {
		t.Errorf("UserID = %q, want %q", got.UserID, state.UserID)
	}
	if got.DateKey != state.DateKey {
		t.Errorf("DateKey = %q, want %q", got.DateKey, state.DateKey)
	}
	if got.Fingerprint != state.Fingerprint {
		t.Errorf("Fingerprint = %q, want %q", got.Fingerprint, state.Fingerprint)
	}
	if got.MatchCount != state.MatchCount {
		t.Errorf("MatchCount = %d, want %d", got.MatchCount, state.MatchCount)
	}
	if !got.SentAt.Equal(state.SentAt) {
		t.Errorf("SentAt = %v, want %v", got.SentAt, state.SentAt)
	}
}

func TestStateRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)

	repo := NewNotificationStateRepository(client)

	_, err := repo.GetState(ctx, "nobody", "2026-01-07")
	if !errors.Is(err, domain.ErrStateNotFound) {
		t.Errorf("GetState() error = %v, want ErrStateNotFound", err)
	}
}

func TestStateRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)

	repo := NewNotificationStateRepository(client)

	first := &domain.NotificationState{
		UserID:      "user-1",
		DateKey:     "2026-01-07",
		Fingerprint: "old",
		MatchCount:  1,
		SentAt:      time.Now().UTC(),
	}
	if err := repo.SaveState(ctx, first); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	second := &domain.NotificationState{
		UserID:      "user-1",
		DateKey:     "2026-01-07",
		Fingerprint: "new",
		MatchCount:  3,
		SentAt:      time.Now().UTC(),
	}
	if err := repo.SaveState(ctx, second); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	got, err := repo.GetState(ctx, "user-1", "2026-01-07")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if got.Fingerprint != "new" {
		t.Errorf("Fingerprint = %q, want %q", got.Fingerprint, "new")
	}
	if got.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", got.MatchCount)
	}
}

func TestStateRepository_Delete(t *testing.T) {
	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)

	repo := NewNotificationStateRepository(client)

	state := &domain.NotificationState{
		UserID:      "user-1",
		DateKey:     "2026-01-08",
		Fingerprint: "abc",
		MatchCount:  1,
		SentAt:      time.Now().UTC(),
	}
	if err := repo.SaveState(ctx, state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	if err := repo.DeleteState(ctx, "user-1", "2026-01-08"); err != nil {
		t.Fatalf("DeleteState() error = %v", err)
	}

	_, err := repo.GetState(ctx, "user-1", "2026-01-08")
	if !errors.Is(err, domain.ErrStateNotFound) {
		t.Errorf("GetState() after delete error = %v, want ErrStateNotFound", err)
	}

	// Deleting a missing state is a no-op.
	if err := repo.DeleteState(ctx, "user-1", "2026-01-08"); err != nil {
		t.Errorf("DeleteState() on missing key error = %v", err)
	}
}

func TestStateRepository_SaveNil(t *testing.T) {
	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)

	repo := NewNotificationStateRepository(client)

	if err := repo.SaveState(ctx, nil); !errors.Is(err, ErrInvalidStateData) {
		t.Errorf("SaveState(nil) error = %v, want ErrInvalidStateData", err)
	}
}
