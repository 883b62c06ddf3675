package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

type clanRepo struct {
	db dbConn
}

func newClanRepo(db dbConn) contract.ClanRepo {
	return &clanRepo{db: db}
}

const clanColumns = `id, name, channel_id, members, created_at, updated_at`

func scanClan(scanner rowScanner) (*entity.Clan, error) {
	clan := &entity.Clan{}
	var membersJSON string
	err := scanner.Scan(
		&clan.ID,
		&clan.Name,
		&clan.ChannelID,
		&membersJSON,
		&clan.CreatedAt,
		&clan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(membersJSON), &clan.Members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clan members: %w", err)
	}

	return clan, nil
}

func (r *clanRepo) GetByName(name string) (*entity.Clan, error) {
	query := `SELECT ` + clanColumns + ` FROM clans WHERE name = ?`

	clan, err := scanClan(r.db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clan: %w", err)
	}

	return clan, nil
}

// GetByMember finds the clan a user belongs to. Membership lists are small,
// so a json_each scan over the members column is enough.
func (r *clanRepo) GetByMember(userID string) (*entity.Clan, error) {
	query := `
		SELECT ` + clanColumns + `
		FROM clans
		WHERE EXISTS (SELECT 1 FROM json_each(clans.members) WHERE json_each.value = ?)
		LIMIT 1
	`

	clan, err := scanClan(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clan by member: %w", err)
	}

	return clan, nil
}

func (r *clanRepo) Upsert(clan *entity.Clan) error {
	members := clan.Members
	if members == nil {
		members = []string{}
	}
	membersJSON, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("failed to marshal clan members: %w", err)
	}

	query := `
		INSERT INTO clans (name, channel_id, members)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			channel_id = excluded.channel_id,
			members = excluded.members,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`

	err = r.db.QueryRow(query, clan.Name, clan.ChannelID, string(membersJSON)).Scan(&clan.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert clan: %w", err)
	}

	return nil
}

func (r *clanRepo) Delete(name string) (bool, error) {
	query := `DELETE FROM clans WHERE name = ?`

	result, err := r.db.Exec(query, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete clan: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}
