package timetablestore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/subplan/notification-dispatch/internal/domain"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) EntriesForUser(ctx context.Context, userID string) ([]domain.TimetableEntry, error) {
	var models []entryModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weekday, start_period").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TimetableEntry, 0, len(models))
	for i := range models {
		entries = append(entries, models[i].toDomain())
	}
	return entries, nil
}

// ReplaceEntries swaps a user's whole timetable in one transaction so a
// concurrent dispatch cycle never observes a half-written week.
func (s *Store) ReplaceEntries(ctx context.Context, userID string, entries []domain.TimetableEntry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entryModel{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		models := make([]entryModel, 0, len(entries))
		for _, e := range entries {
			m := entryFromDomain(e)
			m.UserID = userID
			if m.ID == "" {
				m.ID = uuid.NewString()
			}
			models = append(models, m)
		}
		return tx.Create(&models).Error
	})
}

func (s *Store) DevicesForUser(ctx context.Context, userID string) ([]domain.Device, error) {
	var models []deviceModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("registered_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	devices := make([]domain.Device, 0, len(models))
	for i := range models {
		devices = append(devices, models[i].toDomain())
	}
	return devices, nil
}

func (s *Store) RegisterDevice(ctx context.Context, device *domain.Device) error {
	if device.ID == "" {
		device.ID = uuid.NewString()
	}
	model := deviceModel{
		ID:           device.ID,
		UserID:       device.UserID,
		Endpoint:     device.Endpoint,
		P256dhKey:    device.P256dhKey,
		AuthKey:      device.AuthKey,
		RegisteredAt: device.RegisteredAt,
	}
	return s.db.WithContext(ctx).Create(&model).Error
}

func (s *Store) DeleteDevice(ctx context.Context, deviceID string) error {
	result := s.db.WithContext(ctx).Delete(&deviceModel{}, "id = ?", deviceID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDeviceNotFound
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var model userModel
	err := s.db.WithContext(ctx).First(&model, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := model.toDomain()
	return &user, nil
}

func (s *Store) ListNotifiableUsers(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	err := s.db.WithContext(ctx).
		Where("notify_enabled = ?", true).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].toDomain())
	}
	return users, nil
}
