package service

import (
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
)

// Options carries the tunables for the reminder engine. Zero values fall
// back to production defaults; tests shrink the intervals.
type Options struct {
	GameBotID      string
	ErrorChannelID string
	PollInterval   time.Duration
	TriggerWindow  time.Duration
	SweepInterval  time.Duration
	ExpiredGrace   time.Duration
	Rules          []DetectionRule
}

func (o Options) withDefaults() Options {
	if o.PollInterval == 0 {
		o.PollInterval = 10 * time.Second
	}
	if o.TriggerWindow == 0 {
		o.TriggerWindow = 15 * time.Second
	}
	if o.SweepInterval == 0 {
		o.SweepInterval = time.Minute
	}
	if o.ExpiredGrace == 0 {
		o.ExpiredGrace = 20 * time.Second
	}
	if o.Rules == nil {
		o.Rules = defaultRules()
	}
	return o
}

type Instance struct {
	Reminder   contract.ReminderService
	Settings   contract.SettingsService
	Classifier contract.MessageClassifier
	Scheduler  *scheduler
}

// NewInstance wires the reminder engine: one dispatcher shared by the
// reminder service (near-term fast path) and the scheduler (poll and sweep
// loops). Call Scheduler.Start after migrations have run.
func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, opts Options) *Instance {
	opts = opts.withDefaults()

	dispatcher := newDispatcher(dm, slackClient)
	reminders := newReminderService(dm, dispatcher, opts.TriggerWindow)
	settings := newSettingsService(dm, slackClient)
	classifier := newClassifier(dm, slackClient, reminders, opts.Rules, opts)

	return &Instance{
		Reminder:   reminders,
		Settings:   settings,
		Classifier: classifier,
		Scheduler:  newScheduler(dm, dispatcher, opts),
	}
}
