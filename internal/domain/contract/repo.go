package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reminder() ReminderRepo
	Settings() SettingsRepo
	Clan() ClanRepo
}

// ReminderRepo defines the contract for the reminder store. Lookups return
// (nil, nil) when no record exists.
type ReminderRepo interface {
	// Get fetches the reminder for a key. customID is 0 for non-custom reminders.
	Get(subject entity.Subject, activity string, customID int64) (*entity.Reminder, error)
	// Create inserts a new reminder and fails if the key already exists.
	Create(reminder *entity.Reminder) error
	// Upsert inserts the reminder or, when the key already exists, refreshes
	// end_time, channel and triggered state. The stored message is replaced
	// only when overwriteMessage is set.
	Upsert(reminder *entity.Reminder, overwriteMessage bool) error
	// Delete removes the reminder for a key and reports whether it existed.
	Delete(subject entity.Subject, activity string, customID int64) (bool, error)
	DeleteByID(id int64) error
	UpdateEndTime(id int64, endTime time.Time) error
	ListBySubject(subject entity.Subject) ([]*entity.Reminder, error)
	// ListDue returns untriggered reminders due within the window, including
	// any already past due.
	ListDue(within time.Duration) ([]*entity.Reminder, error)
	// Claim atomically marks a reminder triggered and reports whether this
	// caller won the claim.
	Claim(id int64) (bool, error)
	// ListExpired returns reminders whose end_time is more than the grace
	// window in the past, regardless of triggered state.
	ListExpired(olderThan time.Duration) ([]*entity.Reminder, error)
	// NextCustomID returns the smallest unused positive custom id for a user.
	NextCustomID(userID string) (int64, error)
}

// SettingsRepo defines the contract for user preference snapshots
type SettingsRepo interface {
	Get(userID string) (*entity.UserSettings, error)
	Upsert(settings *entity.UserSettings) error
}

// ClanRepo defines the contract for clan membership records
type ClanRepo interface {
	GetByName(name string) (*entity.Clan, error)
	GetByMember(userID string) (*entity.Clan, error)
	Upsert(clan *entity.Clan) error
	Delete(name string) (bool, error)
}
