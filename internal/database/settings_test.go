package database

import (
	"testing"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newSettingsRepo(db.conn)

	t.Run("should return nil for an unknown user", func(t *testing.T) {
		settings, err := repo.Get("U999999999")

		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("should store and load the full snapshot", func(t *testing.T) {
		settings := &entity.UserSettings{
			UserID:             "U123456789",
			DisplayName:        "Test User",
			DonorTier:          2,
			DoNotDisturb:       true,
			DisabledActivities: []string{domain.ActivityVote},
			Messages:           map[string]string{domain.ActivityHunt: "go hunt again!"},
		}

		require.NoError(t, repo.Upsert(settings))
		assert.NotZero(t, settings.ID)

		stored, err := repo.Get(settings.UserID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Test User", stored.DisplayName)
		assert.Equal(t, 2, stored.DonorTier)
		assert.True(t, stored.DoNotDisturb)
		assert.Equal(t, []string{domain.ActivityVote}, stored.DisabledActivities)
		assert.Equal(t, "go hunt again!", stored.Messages[domain.ActivityHunt])
	})

	t.Run("should update in place on second upsert", func(t *testing.T) {
		settings := &entity.UserSettings{UserID: "U555555555", DonorTier: 1}
		require.NoError(t, repo.Upsert(settings))
		firstID := settings.ID

		settings.DonorTier = 3
		require.NoError(t, repo.Upsert(settings))

		assert.Equal(t, firstID, settings.ID)

		stored, err := repo.Get(settings.UserID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 3, stored.DonorTier)
	})

	t.Run("should handle nil collections", func(t *testing.T) {
		settings := &entity.UserSettings{UserID: "U777777777"}
		require.NoError(t, repo.Upsert(settings))

		stored, err := repo.Get(settings.UserID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Empty(t, stored.DisabledActivities)
		assert.Empty(t, stored.Messages)
	})
}

func TestClanRepo(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newClanRepo(db.conn)

	clan := &entity.Clan{
		Name:      "night-watch",
		ChannelID: "C123456789",
		Members:   []string{"U111111111", "U222222222"},
	}

	t.Run("should create and fetch by name", func(t *testing.T) {
		require.NoError(t, repo.Upsert(clan))
		assert.NotZero(t, clan.ID)

		stored, err := repo.GetByName("night-watch")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, clan.ChannelID, stored.ChannelID)
		assert.Equal(t, clan.Members, stored.Members)
	})

	t.Run("should find the clan by any member", func(t *testing.T) {
		stored, err := repo.GetByMember("U222222222")

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "night-watch", stored.Name)
	})

	t.Run("should return nil for a user without a clan", func(t *testing.T) {
		stored, err := repo.GetByMember("U999999999")

		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("should replace the member list on upsert", func(t *testing.T) {
		clan.Members = []string{"U111111111"}
		require.NoError(t, repo.Upsert(clan))

		stored, err := repo.GetByMember("U222222222")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("should delete and report whether the clan existed", func(t *testing.T) {
		found, err := repo.Delete("night-watch")
		require.NoError(t, err)
		assert.True(t, found)

		found, err = repo.Delete("night-watch")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
