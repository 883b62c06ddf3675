package entity

import (
	"fmt"
	"time"
)

// Subject identifies who a reminder belongs to: a single user or a clan.
// Exactly one of the two fields is set.
type Subject struct {
	UserID   string
	ClanName string
}

func UserSubject(userID string) Subject {
	return Subject{UserID: userID}
}

func ClanSubject(name string) Subject {
	return Subject{ClanName: name}
}

func (s Subject) IsClan() bool {
	return s.ClanName != ""
}

func (s Subject) Valid() bool {
	return (s.UserID == "") != (s.ClanName == "")
}

// Key returns the canonical subject key used in logs and the task registry.
func (s Subject) Key() string {
	if s.IsClan() {
		return "clan:" + s.ClanName
	}
	return "user:" + s.UserID
}

// Reminder is a scheduled cooldown notification.
type Reminder struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ClanName  string    `json:"clan_name" db:"clan_name"`
	Activity  string    `json:"activity" db:"activity"`
	CustomID  int64     `json:"custom_id" db:"custom_id"` // 0 for non-custom reminders
	EndTime   time.Time `json:"end_time" db:"end_time"`
	ChannelID string    `json:"channel_id" db:"channel_id"`
	Message   string    `json:"message" db:"message"`
	Triggered bool      `json:"triggered" db:"triggered"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (r *Reminder) Subject() Subject {
	return Subject{UserID: r.UserID, ClanName: r.ClanName}
}

// Key identifies the reminder slot. At most one reminder exists per key.
func (r *Reminder) Key() string {
	if r.CustomID > 0 {
		return fmt.Sprintf("%s|%s#%d", r.Subject().Key(), r.Activity, r.CustomID)
	}
	return r.Subject().Key() + "|" + r.Activity
}

// UserSettings is the per-user preference snapshot the core reads. It is
// written only through the command surface.
type UserSettings struct {
	ID                 int64             `json:"id" db:"id"`
	UserID             string            `json:"user_id" db:"user_id"`
	DisplayName        string            `json:"display_name" db:"display_name"`
	DonorTier          int               `json:"donor_tier" db:"donor_tier"`
	DoNotDisturb       bool              `json:"do_not_disturb" db:"do_not_disturb"`
	DisabledActivities []string          `json:"disabled_activities" db:"disabled_activities"` // JSON array in sqlite
	Messages           map[string]string `json:"messages" db:"messages"`                       // per-activity templates, JSON object in sqlite
	CreatedAt          time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at" db:"updated_at"`
}

func (s *UserSettings) ReminderDisabled(activity string) bool {
	for _, a := range s.DisabledActivities {
		if a == activity {
			return true
		}
	}
	return false
}

// MessageFor returns the user's template for an activity, or the fallback.
func (s *UserSettings) MessageFor(activity, fallback string) string {
	if s == nil || s.Messages == nil {
		return fallback
	}
	if msg, ok := s.Messages[activity]; ok && msg != "" {
		return msg
	}
	return fallback
}

// Clan groups users for clan-scoped reminders.
type Clan struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ChannelID string    `json:"channel_id" db:"channel_id"`
	Members   []string  `json:"members" db:"members"` // JSON array in sqlite
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// InboundMessage is a chat-transport message normalized into the shape the
// classifier works with. Embeds carry the structured attachment content.
type InboundMessage struct {
	BotID        string
	ChannelID    string
	Timestamp    time.Time
	TimestampRaw string // transport-native message id, used for reactions
	Text         string
	ReplyToUser  string // user whose command this message answers, when known
	Embeds       []Embed
}

// Embed is the structured part of a chat message.
type Embed struct {
	Author string
	Title  string
	Text   string
	Footer string
	Fields []EmbedField
}

type EmbedField struct {
	Title string
	Value string
}
