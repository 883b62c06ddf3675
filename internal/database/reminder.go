package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

const reminderColumns = `id, user_id, clan_name, activity, custom_id, end_time, channel_id, message, triggered, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(scanner rowScanner) (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	err := scanner.Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.ClanName,
		&reminder.Activity,
		&reminder.CustomID,
		&reminder.EndTime,
		&reminder.ChannelID,
		&reminder.Message,
		&reminder.Triggered,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	reminder.EndTime = reminder.EndTime.UTC()
	return reminder, nil
}

func (r *reminderRepo) Get(subject entity.Subject, activity string, customID int64) (*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE user_id = ? AND clan_name = ? AND activity = ? AND custom_id = ?
	`

	reminder, err := scanReminder(r.db.QueryRow(query, subject.UserID, subject.ClanName, activity, customID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

// Create is a plain insert: a duplicate key trips the unique index instead of
// being silently merged.
func (r *reminderRepo) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, clan_name, activity, custom_id, end_time, channel_id, message, triggered)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRow(query,
		reminder.UserID,
		reminder.ClanName,
		reminder.Activity,
		reminder.CustomID,
		reminder.EndTime.UTC(),
		reminder.ChannelID,
		reminder.Message,
		reminder.Triggered,
	).Scan(&reminder.ID)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

// Upsert relies on sqlite's native conflict clause so that concurrent writers
// for the same key cannot interleave a lost update.
func (r *reminderRepo) Upsert(reminder *entity.Reminder, overwriteMessage bool) error {
	query := `
		INSERT INTO reminders (user_id, clan_name, activity, custom_id, end_time, channel_id, message, triggered)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, clan_name, activity, custom_id) DO UPDATE SET
			end_time = excluded.end_time,
			channel_id = excluded.channel_id,
			triggered = excluded.triggered,
			message = CASE WHEN ? THEN excluded.message ELSE reminders.message END,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, message
	`

	err := r.db.QueryRow(query,
		reminder.UserID,
		reminder.ClanName,
		reminder.Activity,
		reminder.CustomID,
		reminder.EndTime.UTC(),
		reminder.ChannelID,
		reminder.Message,
		reminder.Triggered,
		overwriteMessage,
	).Scan(&reminder.ID, &reminder.Message)
	if err != nil {
		return fmt.Errorf("failed to upsert reminder: %w", err)
	}

	return nil
}

func (r *reminderRepo) Delete(subject entity.Subject, activity string, customID int64) (bool, error) {
	query := `DELETE FROM reminders WHERE user_id = ? AND clan_name = ? AND activity = ? AND custom_id = ?`

	result, err := r.db.Exec(query, subject.UserID, subject.ClanName, activity, customID)
	if err != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *reminderRepo) DeleteByID(id int64) error {
	query := `DELETE FROM reminders WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

func (r *reminderRepo) UpdateEndTime(id int64, endTime time.Time) error {
	query := `UPDATE reminders SET end_time = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	_, err := r.db.Exec(query, endTime.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update reminder end time: %w", err)
	}

	return nil
}

func (r *reminderRepo) ListBySubject(subject entity.Subject) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE user_id = ? AND clan_name = ?
		ORDER BY end_time ASC
	`

	rows, err := r.db.Query(query, subject.UserID, subject.ClanName)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

func (r *reminderRepo) ListDue(within time.Duration) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE triggered = 0 AND end_time <= ?
		ORDER BY end_time ASC
	`

	rows, err := r.db.Query(query, time.Now().UTC().Add(within))
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

func (r *reminderRepo) Claim(id int64) (bool, error) {
	query := `UPDATE reminders SET triggered = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND triggered = 0`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim reminder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *reminderRepo) ListExpired(olderThan time.Duration) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE end_time <= ?
		ORDER BY end_time ASC
	`

	rows, err := r.db.Query(query, time.Now().UTC().Add(-olderThan))
	if err != nil {
		return nil, fmt.Errorf("failed to list expired reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// NextCustomID returns the smallest unused positive custom id for a user,
// filling gaps left by cancelled reminders before allocating a new maximum.
func (r *reminderRepo) NextCustomID(userID string) (int64, error) {
	query := `
		SELECT custom_id
		FROM reminders
		WHERE user_id = ? AND activity = ?
		ORDER BY custom_id ASC
	`

	rows, err := r.db.Query(query, userID, domain.ActivityCustom)
	if err != nil {
		return 0, fmt.Errorf("failed to list custom ids: %w", err)
	}
	defer rows.Close()

	next := int64(1)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to scan custom id: %w", err)
		}
		if id == next {
			next++
		} else if id > next {
			break
		}
	}

	return next, nil
}

func collectReminders(rows *sql.Rows) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, nil
}
