package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

// ReminderService is the core surface exposed to the command layer and the
// message classifier.
type ReminderService interface {
	// Upsert creates or refreshes the reminder for (subject, activity).
	Upsert(ctx context.Context, subject entity.Subject, activity string, duration time.Duration, channelID, message string, overwriteMessage bool) (*entity.Reminder, error)
	// CreateCustom creates an ad-hoc reminder with the smallest free custom id.
	CreateCustom(ctx context.Context, userID string, duration time.Duration, channelID, message string) (*entity.Reminder, error)
	// Cancel deletes a reminder and cancels its in-flight delivery task.
	// Returns domain.ErrNotFound when no reminder exists for the key.
	Cancel(ctx context.Context, subject entity.Subject, activity string, customID int64) error
	List(ctx context.Context, subject entity.Subject) ([]*entity.Reminder, error)
	// ReduceAll shifts matching reminders earlier by the given duration,
	// deleting any that would end in the past. An empty activity filter
	// matches everything.
	ReduceAll(ctx context.Context, subject entity.Subject, by time.Duration, activities []string) error
}

// SettingsService owns the user preference snapshot on behalf of the command
// surface.
type SettingsService interface {
	Get(ctx context.Context, userID string) (*entity.UserSettings, error)
	SetDoNotDisturb(ctx context.Context, userID string, enabled bool) error
	SetDonorTier(ctx context.Context, userID string, tier int) error
	SetActivityEnabled(ctx context.Context, userID, activity string, enabled bool) error
}

// MessageClassifier consumes inbound chat-transport messages.
type MessageClassifier interface {
	HandleMessage(ctx context.Context, msg *entity.InboundMessage)
}
