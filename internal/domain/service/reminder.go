package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

type reminderService struct {
	dm            contract.DataManager
	dispatcher    *dispatcher
	triggerWindow time.Duration
}

func newReminderService(dm contract.DataManager, dispatcher *dispatcher, triggerWindow time.Duration) *reminderService {
	return &reminderService{
		dm:            dm,
		dispatcher:    dispatcher,
		triggerWindow: triggerWindow,
	}
}

// Upsert creates or refreshes the reminder for (subject, activity). A new
// end time replaces the old one; any in-flight delivery task for the key is
// cancelled so it cannot fire with stale timing. Reminders due within the
// trigger window are created already claimed and handed straight to the
// dispatcher instead of waiting for the next poll.
func (s *reminderService) Upsert(ctx context.Context, subject entity.Subject, activity string, duration time.Duration, channelID, message string, overwriteMessage bool) (*entity.Reminder, error) {
	if !subject.Valid() {
		return nil, fmt.Errorf("subject must be exactly one of user or clan")
	}
	if activity == domain.ActivityCustom {
		return nil, fmt.Errorf("custom reminders must be created through CreateCustom")
	}
	if !domain.KnownActivity(activity) {
		return nil, domain.ErrUnknownActivity
	}
	if duration < 0 {
		duration = 0
	}

	reminder := &entity.Reminder{
		UserID:    subject.UserID,
		ClanName:  subject.ClanName,
		Activity:  activity,
		EndTime:   time.Now().UTC().Add(duration),
		ChannelID: channelID,
		Message:   message,
		Triggered: duration <= s.triggerWindow,
	}

	if err := s.dm.Reminder().Upsert(reminder, overwriteMessage); err != nil {
		return nil, err
	}

	if reminder.Triggered {
		s.dispatcher.Schedule(reminder)
	} else {
		s.dispatcher.CancelTask(reminder.Key())
	}

	return reminder, nil
}

// CreateCustom creates an ad-hoc reminder. The custom id is the smallest
// unused positive integer for the user. The insert is a plain create: should
// two writers allocate the same id, the unique index rejects the loser
// instead of merging the rows.
func (s *reminderService) CreateCustom(ctx context.Context, userID string, duration time.Duration, channelID, message string) (*entity.Reminder, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if duration < 0 {
		duration = 0
	}

	reminder := &entity.Reminder{
		UserID:    userID,
		Activity:  domain.ActivityCustom,
		EndTime:   time.Now().UTC().Add(duration),
		ChannelID: channelID,
		Message:   message,
		Triggered: duration <= s.triggerWindow,
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		customID, err := tx.Reminder().NextCustomID(userID)
		if err != nil {
			return err
		}
		reminder.CustomID = customID
		return tx.Reminder().Create(reminder)
	})
	if err != nil {
		return nil, err
	}

	if reminder.Triggered {
		s.dispatcher.Schedule(reminder)
	}

	return reminder, nil
}

func (s *reminderService) Cancel(ctx context.Context, subject entity.Subject, activity string, customID int64) error {
	found, err := s.dm.Reminder().Delete(subject, activity, customID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}

	// A record surviving its own delete indicates a store bug.
	if stale, err := s.dm.Reminder().Get(subject, activity, customID); err == nil && stale != nil {
		log.Printf("ERROR %v: %s", domain.ErrRecordExists, stale.Key())
	}

	key := (&entity.Reminder{
		UserID:   subject.UserID,
		ClanName: subject.ClanName,
		Activity: activity,
		CustomID: customID,
	}).Key()
	s.dispatcher.CancelTask(key)

	return nil
}

func (s *reminderService) List(ctx context.Context, subject entity.Subject) ([]*entity.Reminder, error) {
	if !subject.Valid() {
		return nil, fmt.Errorf("subject must be exactly one of user or clan")
	}
	return s.dm.Reminder().ListBySubject(subject)
}

// ReduceAll applies an in-game time-skip: matching reminders end earlier by
// the given amount, and any that would now end in the past are deleted
// outright rather than left negative.
func (s *reminderService) ReduceAll(ctx context.Context, subject entity.Subject, by time.Duration, activities []string) error {
	if !subject.Valid() {
		return fmt.Errorf("subject must be exactly one of user or clan")
	}

	filter := make(map[string]bool, len(activities))
	for _, activity := range activities {
		filter[activity] = true
	}

	now := time.Now().UTC()
	var removed, shifted []*entity.Reminder

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		removed, shifted = nil, nil

		reminders, err := tx.Reminder().ListBySubject(subject)
		if err != nil {
			return err
		}

		for _, reminder := range reminders {
			if len(filter) > 0 && !filter[reminder.Activity] {
				continue
			}

			newEnd := reminder.EndTime.Add(-by)
			if !newEnd.After(now) {
				if err := tx.Reminder().DeleteByID(reminder.ID); err != nil {
					return err
				}
				removed = append(removed, reminder)
				continue
			}

			if err := tx.Reminder().UpdateEndTime(reminder.ID, newEnd); err != nil {
				return err
			}
			reminder.EndTime = newEnd
			shifted = append(shifted, reminder)
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, reminder := range removed {
		s.dispatcher.CancelTask(reminder.Key())
	}
	for _, reminder := range shifted {
		// Claimed reminders have a waiting task keyed on the old end time.
		if reminder.Triggered || s.dispatcher.Active(reminder.Key()) {
			s.dispatcher.Schedule(reminder)
		}
	}

	return nil
}
