package domain

import "context"

//go:generate mockgen -source=state_repository.go -destination=state_repository_mock.go -package=domain

// NotificationStateRepository stores the per-(user, date) delta state.
// Implementations must provide per-key strong consistency: a state written
// during a cycle is visible to any later read within the same cycle.
type NotificationStateRepository interface {
	GetState(ctx context.Context, userID, dateKey string) (*NotificationState, error)
	SaveState(ctx context.Context, state *NotificationState) error
	DeleteState(ctx context.Context, userID, dateKey string) error
}
