package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-cooldown-bot/internal/slack"
	"github.com/diegoclair/slack-cooldown-bot/internal/timestring"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

type SlackHandler struct {
	slackClient     contract.SlackClient
	reminderService contract.ReminderService
	settingsService contract.SettingsService
	classifier      contract.MessageClassifier
	signingSecret   string
}

func New(slackClient contract.SlackClient, reminderService contract.ReminderService, settingsService contract.SettingsService, classifier contract.MessageClassifier, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:     slackClient,
		reminderService: reminderService,
		settingsService: settingsService,
		classifier:      classifier,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleEvents receives the Events API callbacks: the URL verification
// handshake and message events from channels the bot is in. Message events
// are handed to the classifier; edits are classified too because the game
// bot delivers some results by editing its own message.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		if ev, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.handleMessageEvent(r, ev)
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleMessageEvent(r *http.Request, ev *slackevents.MessageEvent) {
	// Edits arrive as message_changed with the new content nested inside.
	if ev.SubType == "message_changed" && ev.Message != nil {
		inner := *ev.Message
		inner.Channel = ev.Channel
		ev = &inner
	}
	if ev.BotID == "" {
		return
	}

	msg := &entity.InboundMessage{
		BotID:        ev.BotID,
		ChannelID:    ev.Channel,
		Timestamp:    parseSlackTimestamp(ev.TimeStamp),
		TimestampRaw: ev.TimeStamp,
		Text:         ev.Text,
		ReplyToUser:  h.threadAuthor(ev.Channel, ev.ThreadTimeStamp, ev.TimeStamp),
	}
	for _, att := range ev.Attachments {
		embed := entity.Embed{
			Author: att.AuthorName,
			Title:  att.Title,
			Text:   att.Text,
			Footer: att.Footer,
		}
		for _, field := range att.Fields {
			embed.Fields = append(embed.Fields, entity.EmbedField{Title: field.Title, Value: field.Value})
		}
		msg.Embeds = append(msg.Embeds, embed)
	}

	h.classifier.HandleMessage(r.Context(), msg)
}

// threadAuthor resolves who the bot is replying to: the author of the root
// message of the thread, when the message is a threaded reply.
func (h *SlackHandler) threadAuthor(channelID, threadTS, ts string) string {
	if threadTS == "" || threadTS == ts {
		return ""
	}

	replies, _, _, err := h.slackClient.GetConversationReplies(&slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     1,
	})
	if err != nil {
		log.Printf("Failed to resolve thread author in %s: %v", channelID, err)
		return ""
	}
	if len(replies) == 0 {
		return ""
	}
	return replies[0].User
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdRemind:
		return h.handleRemind(r, cmd, slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(r, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(r, slashCmd)
	case slackcmd.CmdDnd:
		return h.handleDnd(r, cmd, slashCmd)
	case slackcmd.CmdDonor:
		return h.handleDonor(r, cmd, slashCmd)
	case slackcmd.CmdToggle:
		return h.handleToggle(r, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleRemind(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/cooldown remind 1h 30m <message>`")
	}

	duration, message, err := splitDurationAndMessage(cmd.Args)
	if err != nil {
		if errors.Is(err, timestring.ErrTooLarge) {
			return h.createErrorResponse(fmt.Sprintf("That duration is too far out (max %s)", timestring.Format(timestring.MaxDuration)))
		}
		return h.createErrorResponse("I could not read that duration. Use units like `2d 3h 30m`, largest first, each at most once.")
	}

	reminder, err := h.reminderService.CreateCustom(r.Context(), slashCmd.UserID, duration, slashCmd.ChannelID, message)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to create reminder: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Reminder #%d set for %s from now.", reminder.CustomID, timestring.Format(duration)),
	}
}

func (h *SlackHandler) handleCancel(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/cooldown cancel <activity>` or `/cooldown cancel custom <id>`")
	}

	activity := cmd.Args[0]
	var customID int64
	if activity == domain.ActivityCustom {
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Which one? Use `/cooldown cancel custom <id>`; `/cooldown list` shows the ids.")
		}
		id, err := strconv.ParseInt(cmd.Args[1], 10, 64)
		if err != nil || id <= 0 {
			return h.createErrorResponse(fmt.Sprintf("%q is not a reminder id", cmd.Args[1]))
		}
		customID = id
	} else if !domain.KnownActivity(activity) {
		return h.createErrorResponse(fmt.Sprintf("Unknown activity %q", activity))
	}

	err := h.reminderService.Cancel(r.Context(), entity.UserSubject(slashCmd.UserID), activity, customID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.createErrorResponse(fmt.Sprintf("No pending %s reminder found", activity))
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to cancel reminder: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ %s reminder cancelled.", activity),
	}
}

func (h *SlackHandler) handleList(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	reminders, err := h.reminderService.List(r.Context(), entity.UserSubject(slashCmd.UserID))
	if err != nil {
		return h.createErrorResponse("Failed to list reminders")
	}

	if len(reminders) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No pending reminders. Use `/cooldown remind` to create one.",
		}
	}

	var list strings.Builder
	list.WriteString("*Pending reminders:*\n")
	for _, reminder := range reminders {
		remaining := time.Until(reminder.EndTime)
		if remaining < 0 {
			remaining = 0
		}
		label := reminder.Activity
		if reminder.CustomID > 0 {
			label = fmt.Sprintf("%s #%d", reminder.Activity, reminder.CustomID)
		}
		list.WriteString(fmt.Sprintf("• `%s` in %s\n", label, timestring.Format(remaining)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleDnd(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 || (cmd.Args[0] != "on" && cmd.Args[0] != "off") {
		return h.createErrorResponse("Usage: `/cooldown dnd on` or `/cooldown dnd off`")
	}

	enabled := cmd.Args[0] == "on"
	if err := h.settingsService.SetDoNotDisturb(r.Context(), slashCmd.UserID, enabled); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update preference: %v", err))
	}

	text := "✅ Do-not-disturb enabled: reminders will show your name without pinging you."
	if !enabled {
		text = "✅ Do-not-disturb disabled: reminders will mention you again."
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleDonor(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Usage: `/cooldown donor <0-%d>`", domain.MaxDonorTier))
	}

	tier, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("%q is not a donor tier", cmd.Args[0]))
	}

	if err := h.settingsService.SetDonorTier(r.Context(), slashCmd.UserID, tier); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update donor tier: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Donor tier set to %d. Fresh cooldowns will be scaled accordingly.", tier),
	}
}

func (h *SlackHandler) handleToggle(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/cooldown on <activity>` or `/cooldown off <activity>`")
	}

	enabled := cmd.Args[0] == "on"
	activity := cmd.Args[1]

	err := h.settingsService.SetActivityEnabled(r.Context(), slashCmd.UserID, activity, enabled)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownActivity) {
			return h.createErrorResponse(fmt.Sprintf("Unknown activity %q", activity))
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to update preference: %v", err))
	}

	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ %s reminders %s.", activity, state),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// splitDurationAndMessage takes the longest arg prefix that still parses as
// a duration; the rest is the reminder text.
func splitDurationAndMessage(args []string) (time.Duration, string, error) {
	var duration time.Duration
	split := 0
	for i := 1; i <= len(args); i++ {
		parsed, err := timestring.Parse(strings.Join(args[:i], " "))
		if err != nil {
			if errors.Is(err, timestring.ErrTooLarge) {
				return 0, "", err
			}
			break
		}
		duration = parsed
		split = i
	}
	if split == 0 {
		return 0, "", timestring.ErrInvalid
	}
	return duration, strings.Join(args[split:], " "), nil
}

// parseSlackTimestamp converts a Slack "seconds.microseconds" event
// timestamp to a time. A malformed value yields the zero time, which the
// classifier treats as no elapsed-time correction.
func parseSlackTimestamp(ts string) time.Time {
	parts := strings.SplitN(ts, ".", 2)
	sec, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}
	}
	var micro int64
	if len(parts) == 2 {
		micro, _ = strconv.ParseInt(parts[1], 10, 64)
	}
	return time.Unix(sec, micro*1000).UTC()
}
