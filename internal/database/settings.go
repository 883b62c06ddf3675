package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(userID string) (*entity.UserSettings, error) {
	settings := &entity.UserSettings{}
	query := `
		SELECT id, user_id, display_name, donor_tier, do_not_disturb, disabled_activities, messages, created_at, updated_at
		FROM user_settings
		WHERE user_id = ?
	`

	var disabledJSON, messagesJSON string
	err := r.db.QueryRow(query, userID).Scan(
		&settings.ID,
		&settings.UserID,
		&settings.DisplayName,
		&settings.DonorTier,
		&settings.DoNotDisturb,
		&disabledJSON,
		&messagesJSON,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}

	if err := json.Unmarshal([]byte(disabledJSON), &settings.DisabledActivities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal disabled activities: %w", err)
	}
	if err := json.Unmarshal([]byte(messagesJSON), &settings.Messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	return settings, nil
}

func (r *settingsRepo) Upsert(settings *entity.UserSettings) error {
	disabled := settings.DisabledActivities
	if disabled == nil {
		disabled = []string{}
	}
	disabledJSON, err := json.Marshal(disabled)
	if err != nil {
		return fmt.Errorf("failed to marshal disabled activities: %w", err)
	}

	messages := settings.Messages
	if messages == nil {
		messages = map[string]string{}
	}
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	query := `
		INSERT INTO user_settings (user_id, display_name, donor_tier, do_not_disturb, disabled_activities, messages)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = excluded.display_name,
			donor_tier = excluded.donor_tier,
			do_not_disturb = excluded.do_not_disturb,
			disabled_activities = excluded.disabled_activities,
			messages = excluded.messages,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`

	err = r.db.QueryRow(query,
		settings.UserID,
		settings.DisplayName,
		settings.DonorTier,
		settings.DoNotDisturb,
		string(disabledJSON),
		string(messagesJSON),
	).Scan(&settings.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}

	return nil
}
