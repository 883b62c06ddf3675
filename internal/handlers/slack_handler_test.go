package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
	"github.com/diegoclair/slack-cooldown-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) *slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, recorder.Code)

	var msg slack.Msg
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &msg))
	return &msg
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	type args struct {
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, msg *slack.Msg)
	}{
		{
			name: "Should create a custom reminder",
			args: args{
				text:      "remind 1h 30m buy a lootbox",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.ReminderServiceMock.EXPECT().
					CreateCustom(gomock.Any(), args.userID, 90*time.Minute, args.channelID, "buy a lootbox").
					Return(&entity.Reminder{CustomID: 1, Activity: domain.ActivityCustom}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Reminder #1 set for 1h 30m 0s")
			},
		},
		{
			name: "Should reject an unreadable duration",
			args: args{
				text:      "remind later today",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "could not read that duration")
			},
		},
		{
			name: "Should reject a duration above the bound",
			args: args{
				text:      "remind 300w nap",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "too far out")
			},
		},
		{
			name: "Should cancel an activity reminder",
			args: args{
				text:      "cancel hunt",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.ReminderServiceMock.EXPECT().
					Cancel(gomock.Any(), entity.UserSubject(args.userID), domain.ActivityHunt, int64(0)).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "hunt reminder cancelled")
			},
		},
		{
			name: "Should cancel a custom reminder by id",
			args: args{
				text:      "cancel custom 2",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.ReminderServiceMock.EXPECT().
					Cancel(gomock.Any(), entity.UserSubject(args.userID), domain.ActivityCustom, int64(2)).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "custom reminder cancelled")
			},
		},
		{
			name: "Should report a missing reminder on cancel",
			args: args{
				text:      "cancel hunt",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.ReminderServiceMock.EXPECT().
					Cancel(gomock.Any(), entity.UserSubject(args.userID), domain.ActivityHunt, int64(0)).
					Return(domain.ErrNotFound).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "No pending hunt reminder")
			},
		},
		{
			name: "Should reject cancelling an unknown activity",
			args: args{
				text:      "cancel sleep",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, `Unknown activity "sleep"`)
			},
		},
		{
			name: "Should list pending reminders with remaining time",
			args: args{
				text:      "list",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.ReminderServiceMock.EXPECT().
					List(gomock.Any(), entity.UserSubject(args.userID)).
					Return([]*entity.Reminder{
						{Activity: domain.ActivityHunt, EndTime: time.Now().UTC().Add(50 * time.Second)},
						{Activity: domain.ActivityCustom, CustomID: 1, EndTime: time.Now().UTC().Add(time.Hour)},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "`hunt`")
				assert.Contains(t, msg.Text, "`custom #1`")
			},
		},
		{
			name: "Should tell the user when nothing is pending",
			args: args{
				text:      "list",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.ReminderServiceMock.EXPECT().
					List(gomock.Any(), entity.UserSubject(args.userID)).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "No pending reminders")
			},
		},
		{
			name: "Should enable do-not-disturb",
			args: args{
				text:      "dnd on",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.SettingsServiceMock.EXPECT().
					SetDoNotDisturb(gomock.Any(), args.userID, true).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "Do-not-disturb enabled")
			},
		},
		{
			name: "Should set the donor tier",
			args: args{
				text:      "donor 2",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.SettingsServiceMock.EXPECT().
					SetDonorTier(gomock.Any(), args.userID, 2).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "Donor tier set to 2")
			},
		},
		{
			name: "Should disable reminders for one activity",
			args: args{
				text:      "off vote",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.SettingsServiceMock.EXPECT().
					SetActivityEnabled(gomock.Any(), args.userID, domain.ActivityVote, false).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "vote reminders disabled")
			},
		},
		{
			name: "Should show help for empty text",
			args: args{
				text:      "",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "Available commands")
			},
		},
		{
			name: "Should reject unknown commands",
			args: args{
				text:      "dance",
				channelID: "C123456789",
				userID:    "U123456789",
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "unknown command")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			req := test.CreateSlackRequest(t, "/cooldown", tt.args.text, tt.args.channelID, tt.args.userID)
			recorder := test.CreateTestRecorder()

			handler.HandleSlashCommand(recorder, req)

			tt.checkResponse(t, decodeResponse(t, recorder))
		})
	}
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/cooldown", "list", "C123456789", "U123456789")
	req.Header.Set("X-Slack-Signature", "v0=invalid")
	recorder := test.CreateTestRecorder()

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSlackHandler_HandleEvents(t *testing.T) {
	t.Run("Should answer the URL verification handshake", func(t *testing.T) {
		_, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		payload := `{"type":"url_verification","challenge":"test-challenge-token"}`
		recorder := test.CreateTestRecorder()

		handler.HandleEvents(recorder, test.CreateEventRequest(t, payload))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "test-challenge-token", recorder.Body.String())
	})

	t.Run("Should forward bot messages to the classifier", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.ClassifierMock.EXPECT().
			HandleMessage(gomock.Any(), gomock.Any()).
			Do(func(_ any, msg *entity.InboundMessage) {
				assert.Equal(t, "B0GAME00001", msg.BotID)
				assert.Equal(t, "C123456789", msg.ChannelID)
				assert.Equal(t, "1700000000.000100", msg.TimestampRaw)
				assert.Contains(t, msg.Text, "wait at least")
				assert.False(t, msg.Timestamp.IsZero())
			}).Times(1)

		payload := `{
			"type": "event_callback",
			"event": {
				"type": "message",
				"bot_id": "B0GAME00001",
				"channel": "C123456789",
				"ts": "1700000000.000100",
				"text": "**Test User**, you have already hunted recently. Please wait at least **1h 30m**"
			}
		}`
		recorder := test.CreateTestRecorder()

		handler.HandleEvents(recorder, test.CreateEventRequest(t, payload))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Should ignore human messages", func(t *testing.T) {
		_, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		payload := `{
			"type": "event_callback",
			"event": {
				"type": "message",
				"user": "U123456789",
				"channel": "C123456789",
				"ts": "1700000000.000100",
				"text": "rpg hunt"
			}
		}`
		recorder := test.CreateTestRecorder()

		handler.HandleEvents(recorder, test.CreateEventRequest(t, payload))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Should classify edited bot messages", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.ClassifierMock.EXPECT().
			HandleMessage(gomock.Any(), gomock.Any()).
			Do(func(_ any, msg *entity.InboundMessage) {
				assert.Equal(t, "B0GAME00001", msg.BotID)
				assert.Equal(t, "C123456789", msg.ChannelID)
				assert.Contains(t, msg.Text, "went hunting")
			}).Times(1)

		payload := `{
			"type": "event_callback",
			"event": {
				"type": "message",
				"subtype": "message_changed",
				"channel": "C123456789",
				"ts": "1700000001.000100",
				"message": {
					"type": "message",
					"bot_id": "B0GAME00001",
					"ts": "1700000000.000100",
					"text": "**Test User** went hunting and found a wolf"
				}
			}
		}`
		recorder := test.CreateTestRecorder()

		handler.HandleEvents(recorder, test.CreateEventRequest(t, payload))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Should reject a bad signature", func(t *testing.T) {
		_, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		req := test.CreateEventRequest(t, `{"type":"url_verification","challenge":"x"}`)
		req.Header.Set("X-Slack-Signature", "v0=invalid")
		recorder := test.CreateTestRecorder()

		handler.HandleEvents(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
