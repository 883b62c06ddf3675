package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSchedulerTest(t *testing.T) (*scheduler, serviceTestDeps, *gomock.Controller) {
	t.Helper()

	deps, ctrl := newServiceTestDeps(t)
	dispatcher := newDispatcher(deps.dm, deps.mockSlackClient)
	s := newScheduler(deps.dm, dispatcher, Options{
		PollInterval:  50 * time.Millisecond,
		TriggerWindow: time.Second,
		SweepInterval: time.Hour,
		ExpiredGrace:  20 * time.Second,
	}.withDefaults())

	return s, deps, ctrl
}

func storeReminder(t *testing.T, deps serviceTestDeps, userID string, in time.Duration, triggered bool) *entity.Reminder {
	t.Helper()

	reminder := &entity.Reminder{
		UserID:    userID,
		Activity:  domain.ActivityHunt,
		EndTime:   time.Now().UTC().Add(in),
		ChannelID: "C123456789",
		Message:   "your cooldown is over!",
		Triggered: triggered,
	}
	require.NoError(t, deps.dm.Reminder().Upsert(reminder, true))
	return reminder
}

func TestScheduler_claimDue(t *testing.T) {
	t.Run("should claim and deliver reminders inside the window", func(t *testing.T) {
		s, deps, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		reminder := storeReminder(t, deps, "U111111111", 100*time.Millisecond, false)
		storeReminder(t, deps, "U222222222", time.Hour, false)

		delivered := expectDelivery(deps, 1)

		s.claimDue()

		channelID := waitForDelivery(t, delivered, 3*time.Second)
		assert.Equal(t, "C123456789", channelID)

		require.Eventually(t, func() bool {
			stored, err := deps.dm.Reminder().Get(reminder.Subject(), reminder.Activity, 0)
			return err == nil && stored == nil
		}, 2*time.Second, 20*time.Millisecond)

		far, err := deps.dm.Reminder().Get(entity.UserSubject("U222222222"), domain.ActivityHunt, 0)
		require.NoError(t, err)
		assert.NotNil(t, far, "reminders outside the window must stay untouched")
	})

	t.Run("should not schedule a reminder twice across polls", func(t *testing.T) {
		s, deps, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		storeReminder(t, deps, "U111111111", 200*time.Millisecond, false)

		delivered := expectDelivery(deps, 1)

		// Second pass sees the row as claimed and must skip it.
		s.claimDue()
		s.claimDue()

		waitForDelivery(t, delivered, 3*time.Second)
		time.Sleep(300 * time.Millisecond)
	})

	t.Run("should schedule from persisted state when the listing snapshot went stale", func(t *testing.T) {
		s, deps, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		stale := storeReminder(t, deps, "U111111111", 100*time.Millisecond, false)

		snapshot, err := deps.dm.Reminder().ListDue(time.Second)
		require.NoError(t, err)
		require.Len(t, snapshot, 1)

		// A refresh lands between the listing and the claim: same key, new
		// end time far in the future.
		refreshed := *stale
		refreshed.EndTime = time.Now().UTC().Add(time.Hour)
		refreshed.Message = "refreshed"
		refreshed.Triggered = false
		require.NoError(t, deps.dm.Reminder().Upsert(&refreshed, true))

		// No PostMessage expectation: delivering the stale 100ms snapshot
		// would fail the mock.
		s.claimAndSchedule(snapshot[0])

		time.Sleep(400 * time.Millisecond)

		stored, err := deps.dm.Reminder().Get(stale.Subject(), stale.Activity, 0)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.Triggered)
		assert.WithinDuration(t, refreshed.EndTime, stored.EndTime, time.Second)
		assert.True(t, s.dispatcher.Active(stale.Key()), "the task must wait for the refreshed end time")
	})

	t.Run("should pick up claimed work on the first poll after a restart", func(t *testing.T) {
		s, deps, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		// A row left due-but-unclaimed by a previous process.
		storeReminder(t, deps, "U111111111", -time.Second, false)

		delivered := expectDelivery(deps, 1)

		s.Start()
		defer s.Stop()

		waitForDelivery(t, delivered, 3*time.Second)
	})
}

func TestScheduler_sweepExpired(t *testing.T) {
	t.Run("should discard reminders that expired without delivery", func(t *testing.T) {
		s, deps, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		stale := storeReminder(t, deps, "U111111111", -2*time.Minute, true)

		s.sweepExpired()

		stored, err := deps.dm.Reminder().Get(stale.Subject(), stale.Activity, 0)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("should leave reminders inside the grace window alone", func(t *testing.T) {
		s, deps, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		recent := storeReminder(t, deps, "U111111111", -5*time.Second, true)

		s.sweepExpired()

		stored, err := deps.dm.Reminder().Get(recent.Subject(), recent.Activity, 0)
		require.NoError(t, err)
		assert.NotNil(t, stored)
	})

	t.Run("should not touch reminders with an in-flight delivery task", func(t *testing.T) {
		s, deps, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		delivered := expectDelivery(deps, 1)

		inflight := storeReminder(t, deps, "U111111111", -2*time.Minute, true)

		// Register a waiting task for the key, as a slow delivery would.
		_, release := s.dispatcher.registry.register(inflight.Key())

		s.sweepExpired()

		stored, err := deps.dm.Reminder().Get(inflight.Subject(), inflight.Activity, 0)
		require.NoError(t, err)
		require.NotNil(t, stored)

		release()
		s.dispatcher.Schedule(inflight)
		waitForDelivery(t, delivered, 3*time.Second)
	})
}
