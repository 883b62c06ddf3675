package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

// settingsService owns the user preference snapshot. The reminder core only
// ever reads settings; every write goes through here on behalf of the
// command surface.
type settingsService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
}

func newSettingsService(dm contract.DataManager, slackClient contract.SlackClient) *settingsService {
	return &settingsService{
		dm:          dm,
		slackClient: slackClient,
	}
}

func (s *settingsService) Get(ctx context.Context, userID string) (*entity.UserSettings, error) {
	return s.dm.Settings().Get(userID)
}

func (s *settingsService) getOrDefault(userID string) (*entity.UserSettings, error) {
	settings, err := s.dm.Settings().Get(userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.UserSettings{UserID: userID}
	if user, err := s.slackClient.GetUserInfo(userID); err == nil {
		settings.DisplayName = user.RealName
		if settings.DisplayName == "" {
			settings.DisplayName = user.Name
		}
	}

	return settings, nil
}

func (s *settingsService) SetDoNotDisturb(ctx context.Context, userID string, enabled bool) error {
	settings, err := s.getOrDefault(userID)
	if err != nil {
		return err
	}

	settings.DoNotDisturb = enabled
	return s.dm.Settings().Upsert(settings)
}

func (s *settingsService) SetDonorTier(ctx context.Context, userID string, tier int) error {
	if tier < 0 || tier > domain.MaxDonorTier {
		return fmt.Errorf("donor tier must be between 0 and %d", domain.MaxDonorTier)
	}

	settings, err := s.getOrDefault(userID)
	if err != nil {
		return err
	}

	settings.DonorTier = tier
	return s.dm.Settings().Upsert(settings)
}

func (s *settingsService) SetActivityEnabled(ctx context.Context, userID, activity string, enabled bool) error {
	if !domain.KnownActivity(activity) {
		return domain.ErrUnknownActivity
	}

	settings, err := s.getOrDefault(userID)
	if err != nil {
		return err
	}

	disabled := make([]string, 0, len(settings.DisabledActivities))
	for _, a := range settings.DisabledActivities {
		if a != activity {
			disabled = append(disabled, a)
		}
	}
	if !enabled {
		disabled = append(disabled, activity)
	}
	settings.DisabledActivities = disabled

	return s.dm.Settings().Upsert(settings)
}
