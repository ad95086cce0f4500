package domain

import "context"

//go:generate mockgen -source=timetable_repository.go -destination=timetable_repository_mock.go -package=domain

// TimetableRepository reads and replaces a user's weekly timetable entries.
type TimetableRepository interface {
	EntriesForUser(ctx context.Context, userID string) ([]TimetableEntry, error)
	ReplaceEntries(ctx context.Context, userID string, entries []TimetableEntry) error
}

// DeviceRepository manages a user's registered push endpoints.
type DeviceRepository interface {
	DevicesForUser(ctx context.Context, userID string) ([]Device, error)
	RegisterDevice(ctx context.Context, device *Device) error
	DeleteDevice(ctx context.Context, deviceID string) error
}

// UserRepository lists the users a dispatch cycle has to consider.
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*User, error)
	ListNotifiableUsers(ctx context.Context) ([]User, error)
}
