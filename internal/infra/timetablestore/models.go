package timetablestore

import (
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
)

type userModel struct {
	ID            string `gorm:"primaryKey"`
	LookaheadDays int
	NotifyEnabled bool `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (userModel) TableName() string { return "users" }

type entryModel struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	Weekday     string
	StartPeriod int
	Duration    int
	SubjectCode string
	TeacherCode string
	Room        string
	WeekMode    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (entryModel) TableName() string { return "timetable_entries" }

type deviceModel struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"index"`
	Endpoint     string `gorm:"uniqueIndex"`
	P256dhKey    string
	AuthKey      string
	RegisteredAt time.Time
}

func (deviceModel) TableName() string { return "devices" }

func (m *entryModel) toDomain() domain.TimetableEntry {
	return domain.TimetableEntry{
		ID:          m.ID,
		UserID:      m.UserID,
		Weekday:     domain.Weekday(m.Weekday),
		StartPeriod: m.StartPeriod,
		Duration:    m.Duration,
		SubjectCode: m.SubjectCode,
		TeacherCode: m.TeacherCode,
		Room:        m.Room,
		WeekMode:    domain.WeekMode(m.WeekMode),
	}
}

func entryFromDomain(e domain.TimetableEntry) entryModel {
	return entryModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Weekday:     string(e.Weekday),
		StartPeriod: e.StartPeriod,
		Duration:    e.Duration,
		SubjectCode: e.SubjectCode,
		TeacherCode: e.TeacherCode,
		Room:        e.Room,
		WeekMode:    string(e.WeekMode),
	}
}

func (m *deviceModel) toDomain() domain.Device {
	return domain.Device{
		ID:           m.ID,
		UserID:       m.UserID,
		Endpoint:     m.Endpoint,
		P256dhKey:    m.P256dhKey,
		AuthKey:      m.AuthKey,
		RegisteredAt: m.RegisteredAt,
	}
}

func (m *userModel) toDomain() domain.User {
	return domain.User{
		ID:            m.ID,
		LookaheadDays: m.LookaheadDays,
		NotifyEnabled: m.NotifyEnabled,
	}
}
