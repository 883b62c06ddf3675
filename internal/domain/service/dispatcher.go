package service

import (
	"log"
	"strings"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// dispatcher owns the in-flight delivery tasks. Scheduling a key replaces
// and cancels any task already waiting on it, so a stale task never sends.
type dispatcher struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	registry    *taskRegistry
}

func newDispatcher(dm contract.DataManager, slackClient contract.SlackClient) *dispatcher {
	return &dispatcher{
		dm:          dm,
		slackClient: slackClient,
		registry:    newTaskRegistry(),
	}
}

// Schedule launches a delivery task that wakes at the reminder's end time.
// Past-due reminders deliver immediately.
func (d *dispatcher) Schedule(reminder *entity.Reminder) {
	ctx, release := d.registry.register(reminder.Key())

	go func() {
		defer release()

		if wait := time.Until(reminder.EndTime); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return
			}
		}
		if ctx.Err() != nil {
			return
		}

		d.deliver(reminder)
	}()
}

func (d *dispatcher) CancelTask(key string) {
	d.registry.cancel(key)
}

func (d *dispatcher) Active(key string) bool {
	return d.registry.active(key)
}

func (d *dispatcher) Stop() {
	d.registry.cancelAll()
}

func (d *dispatcher) deliver(reminder *entity.Reminder) {
	recipient, err := d.recipient(reminder)
	if err != nil {
		log.Printf("Failed to resolve recipient for %s: %v", reminder.Key(), err)
		recipient = ""
	}

	text := reminder.Message
	if recipient != "" {
		text = recipient + " " + text
	}

	_, _, err = d.slackClient.PostMessage(reminder.ChannelID, slack.MsgOptionText(text, false))
	if err != nil {
		if channelUnavailable(err) {
			log.Printf("Delivery channel unavailable for %s (channel %s): %v", reminder.Key(), reminder.ChannelID, err)
		} else {
			log.Printf("Failed to deliver reminder %s: %v", reminder.Key(), err)
		}
	}

	// One-shot either way: a stuck record would block future upserts for
	// this key, so the reminder is discarded rather than retried.
	if err := d.dm.Reminder().DeleteByID(reminder.ID); err != nil {
		log.Printf("Failed to delete delivered reminder %s: %v", reminder.Key(), err)
	}
}

// recipient builds the addressing prefix: a mention by default, the plain
// display name when the user enabled do-not-disturb, and a mention of every
// current member for clan reminders.
func (d *dispatcher) recipient(reminder *entity.Reminder) (string, error) {
	if reminder.Subject().IsClan() {
		clan, err := d.dm.Clan().GetByName(reminder.ClanName)
		if err != nil {
			return "", err
		}
		if clan == nil || len(clan.Members) == 0 {
			return "", nil
		}
		mentions := make([]string, 0, len(clan.Members))
		for _, member := range clan.Members {
			mentions = append(mentions, "<@"+member+">")
		}
		return strings.Join(mentions, " "), nil
	}

	settings, err := d.dm.Settings().Get(reminder.UserID)
	if err != nil {
		return "", err
	}

	if settings != nil && settings.DoNotDisturb {
		name := settings.DisplayName
		if name == "" {
			if user, err := d.slackClient.GetUserInfo(reminder.UserID); err == nil {
				name = user.RealName
				if name == "" {
					name = user.Name
				}
			}
		}
		if name != "" {
			return "*" + name + "*", nil
		}
	}

	return "<@" + reminder.UserID + ">", nil
}

func channelUnavailable(err error) bool {
	switch err.Error() {
	case "channel_not_found", "is_archived", "not_in_channel", "restricted_action":
		return true
	}
	return false
}
