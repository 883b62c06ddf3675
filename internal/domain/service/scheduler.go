package service

import (
	"log"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

// scheduler polls the store for due reminders, claims them and hands them to
// the dispatcher. It keeps no required state across restarts: the first poll
// after boot picks up whatever the store says is due.
type scheduler struct {
	dm            contract.DataManager
	dispatcher    *dispatcher
	pollInterval  time.Duration
	triggerWindow time.Duration
	sweepInterval time.Duration
	expiredGrace  time.Duration
	stopChan      chan struct{}
	running       bool
}

func newScheduler(dm contract.DataManager, dispatcher *dispatcher, opts Options) *scheduler {
	return &scheduler{
		dm:            dm,
		dispatcher:    dispatcher,
		pollInterval:  opts.PollInterval,
		triggerWindow: opts.TriggerWindow,
		sweepInterval: opts.SweepInterval,
		expiredGrace:  opts.ExpiredGrace,
		stopChan:      make(chan struct{}),
		running:       false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.pollLoop()
	go s.sweepLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.dispatcher.Stop()
	s.running = false
}

func (s *scheduler) pollLoop() {
	// Immediate pass so restart recovery does not wait a full interval.
	s.claimDue()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.claimDue()
		case <-s.stopChan:
			return
		}
	}
}

func (s *scheduler) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepExpired()
		case <-s.stopChan:
			return
		}
	}
}

// claimDue hands every due reminder it wins the claim for to the dispatcher.
// A lost claim means another writer (or a near-term upsert fast path) got
// there first. Errors are logged and the loop keeps going; one bad record
// must not halt scheduling.
func (s *scheduler) claimDue() {
	due, err := s.dm.Reminder().ListDue(s.triggerWindow)
	if err != nil {
		log.Printf("Failed to list due reminders: %v", err)
		return
	}

	for _, reminder := range due {
		s.claimAndSchedule(reminder)
	}
}

// claimAndSchedule claims one listed reminder and hands it to the dispatcher.
// The listing snapshot may be stale by the time the claim is won (a refresh
// can land in between), so the row is re-read and the task is scheduled from
// persisted state, never from the snapshot.
func (s *scheduler) claimAndSchedule(snapshot *entity.Reminder) {
	claimed, err := s.dm.Reminder().Claim(snapshot.ID)
	if err != nil {
		log.Printf("Failed to claim reminder %s: %v", snapshot.Key(), err)
		return
	}
	if !claimed {
		return
	}

	current, err := s.dm.Reminder().Get(snapshot.Subject(), snapshot.Activity, snapshot.CustomID)
	if err != nil {
		log.Printf("Failed to reload claimed reminder %s: %v", snapshot.Key(), err)
		return
	}
	if current == nil || current.ID != snapshot.ID || !current.Triggered {
		// Deleted or refreshed since the claim; the next poll handles it.
		return
	}

	s.dispatcher.Schedule(current)
}

// sweepExpired garbage-collects reminders that should have fired but never
// got delivered, which indicates a scheduler outage or a crash mid-delivery.
func (s *scheduler) sweepExpired() {
	expired, err := s.dm.Reminder().ListExpired(s.expiredGrace)
	if err != nil {
		log.Printf("Failed to list expired reminders: %v", err)
		return
	}

	for _, reminder := range expired {
		if s.dispatcher.Active(reminder.Key()) {
			// Delivery task still in flight.
			continue
		}
		log.Printf("Reminder %s expired without delivery, discarding", reminder.Key())
		if err := s.dm.Reminder().DeleteByID(reminder.ID); err != nil {
			log.Printf("Failed to delete expired reminder %s: %v", reminder.Key(), err)
		}
	}
}
