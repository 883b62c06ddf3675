package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
	"github.com/diegoclair/slack-cooldown-bot/internal/timestring"
	"github.com/slack-go/slack"
)

// Disposition classifies the outcome of matching a message against the rule
// table.
type Disposition int

const (
	// DispositionProceed means a reminder should be scheduled or cancelled.
	DispositionProceed Disposition = iota
	// DispositionIgnore is a known non-actionable message.
	DispositionIgnore
	// DispositionLogged is a message with the expected structure whose
	// extraction failed; it is surfaced to operators, never silently dropped.
	DispositionLogged
)

// Classification is the result of matching a game bot message.
type Classification struct {
	Disposition Disposition
	Activity    string
	UserID      string
	ClanName    string
	ChannelID   string // delivery channel override, set for clan reminders
	Duration    time.Duration
	Cancel      bool
	Reason      string
}

func (c *Classification) Subject() entity.Subject {
	if c.ClanName != "" {
		return entity.ClanSubject(c.ClanName)
	}
	return entity.UserSubject(c.UserID)
}

// classifier matches game bot messages against the detection rule table and
// turns matches into reminder upserts or cancellations.
type classifier struct {
	dm             contract.DataManager
	slackClient    contract.SlackClient
	reminders      contract.ReminderService
	rules          []DetectionRule
	gameBotID      string
	errorChannelID string
	now            func() time.Time
}

func newClassifier(dm contract.DataManager, slackClient contract.SlackClient, reminders contract.ReminderService, rules []DetectionRule, opts Options) *classifier {
	return &classifier{
		dm:             dm,
		slackClient:    slackClient,
		reminders:      reminders,
		rules:          rules,
		gameBotID:      opts.GameBotID,
		errorChannelID: opts.ErrorChannelID,
		now:            time.Now,
	}
}

// Classify matches a message against the rule table. It returns nil for
// messages not authored by the tracked game bot and for messages no rule
// matches. Rules are mutually exclusive; first match wins.
func (c *classifier) Classify(ctx context.Context, msg *entity.InboundMessage) *Classification {
	if msg.BotID == "" || msg.BotID != c.gameBotID {
		return nil
	}

	blob := normalizeMessage(msg)
	for i := range c.rules {
		rule := &c.rules[i]
		if !rule.matches(msg, blob) {
			continue
		}
		return c.evaluate(ctx, rule, msg, blob)
	}

	return nil
}

// HandleMessage is the inbound entry point from the chat transport. It never
// returns an error: failures are logged or flagged so one bad message cannot
// break handling of the others.
func (c *classifier) HandleMessage(ctx context.Context, msg *entity.InboundMessage) {
	result := c.Classify(ctx, msg)
	if result == nil {
		return
	}

	switch result.Disposition {
	case DispositionIgnore:
		return
	case DispositionLogged:
		c.reportUnhandled(msg, result)
		return
	}

	if result.Cancel {
		err := c.reminders.Cancel(ctx, result.Subject(), result.Activity, 0)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			log.Printf("Failed to cancel %s reminder for %s: %v", result.Activity, result.Subject().Key(), err)
		}
		return
	}

	settings, err := c.dm.Settings().Get(result.UserID)
	if err != nil {
		log.Printf("Failed to load settings for %s: %v", result.UserID, err)
	}
	if settings != nil && settings.ReminderDisabled(result.Activity) {
		return
	}

	channelID := msg.ChannelID
	if result.ChannelID != "" {
		channelID = result.ChannelID
	}

	message := renderMessage(settings, result.Activity)
	if _, err := c.reminders.Upsert(ctx, result.Subject(), result.Activity, result.Duration, channelID, message, true); err != nil {
		log.Printf("Failed to upsert %s reminder for %s: %v", result.Activity, result.Subject().Key(), err)
	}
}

func (c *classifier) evaluate(ctx context.Context, rule *DetectionRule, msg *entity.InboundMessage, blob string) *Classification {
	if rule.Kind == RuleIgnore {
		return &Classification{Disposition: DispositionIgnore, Activity: rule.Activity}
	}

	userID, err := c.resolveUser(rule, msg, blob)
	if err != nil {
		return &Classification{
			Disposition: DispositionLogged,
			Activity:    rule.Activity,
			Reason:      err.Error(),
		}
	}

	result := &Classification{
		Disposition: DispositionProceed,
		Activity:    rule.Activity,
		UserID:      userID,
	}

	if rule.ClanScoped {
		clan, err := c.dm.Clan().GetByMember(userID)
		if err != nil {
			return &Classification{Disposition: DispositionLogged, Activity: rule.Activity, Reason: err.Error()}
		}
		if clan == nil {
			return &Classification{
				Disposition: DispositionLogged,
				Activity:    rule.Activity,
				Reason:      fmt.Sprintf("no clan registered for user %s", userID),
			}
		}
		result.ClanName = clan.Name
		result.ChannelID = clan.ChannelID
	}

	switch rule.Kind {
	case RuleCancel:
		result.Cancel = true
		return result

	case RuleCooldownText:
		match := waitPattern.FindStringSubmatch(blob)
		if match == nil {
			return &Classification{
				Disposition: DispositionLogged,
				Activity:    rule.Activity,
				Reason:      "cooldown message carries no duration text",
			}
		}
		duration, err := timestring.Parse(match[1])
		if err != nil {
			return &Classification{
				Disposition: DispositionLogged,
				Activity:    rule.Activity,
				Reason:      fmt.Sprintf("unparseable duration text %q: %v", match[1], err),
			}
		}
		// The literal was true when the game bot sent the message, not now.
		duration -= c.elapsedSince(msg.Timestamp)
		if duration < 0 {
			duration = 0
		}
		result.Duration = duration
		return result

	case RuleFreshSuccess:
		duration, err := c.freshCooldown(rule.Activity, userID, msg.Timestamp)
		if err != nil {
			return &Classification{Disposition: DispositionLogged, Activity: rule.Activity, Reason: err.Error()}
		}
		result.Duration = duration
		return result
	}

	return &Classification{
		Disposition: DispositionLogged,
		Activity:    rule.Activity,
		Reason:      "rule has no extraction kind",
	}
}

// freshCooldown computes the remaining cooldown when a success message
// carries no duration text: the static definition, reduced by the donor
// multiplier and any running event, minus the time already elapsed since the
// message was sent. Negative results clamp to zero so nothing is scheduled
// in the past.
func (c *classifier) freshCooldown(activity, userID string, sentAt time.Time) (time.Duration, error) {
	def, ok := domain.CooldownFor(activity)
	if !ok {
		return 0, fmt.Errorf("no cooldown definition for activity %q", activity)
	}

	base := def.Base
	if def.DonorAffected {
		settings, err := c.dm.Settings().Get(userID)
		if err != nil {
			return 0, err
		}
		if settings != nil {
			base = time.Duration(float64(base) * domain.DonorMultiplier(settings.DonorTier))
		}
	}
	if def.EventReduction > 0 {
		base = time.Duration(float64(base) * (1 - def.EventReduction))
	}

	duration := base - c.elapsedSince(sentAt)
	if duration < 0 {
		duration = 0
	}
	return duration, nil
}

// elapsedSince reports how long ago the message was sent. A zero timestamp
// (malformed transport value) yields no correction.
func (c *classifier) elapsedSince(sentAt time.Time) time.Duration {
	if sentAt.IsZero() {
		return 0
	}
	elapsed := c.now().Sub(sentAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// resolveUser prefers the transport-native reply link (unambiguous) and
// falls back to extracting a display name from the message and matching it
// against the workspace user list. Both sides of the comparison go through
// the same normalization, otherwise matches fail silently on unicode names.
func (c *classifier) resolveUser(rule *DetectionRule, msg *entity.InboundMessage, blob string) (string, error) {
	if msg.ReplyToUser != "" {
		return msg.ReplyToUser, nil
	}

	pattern := rule.NamePattern
	if pattern == nil {
		pattern = defaultNamePattern
	}
	match := pattern.FindStringSubmatch(blob)
	if match == nil {
		return "", domain.ErrUserResolution
	}
	name := match[1]

	users, err := c.slackClient.GetUsers()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUserResolution, err)
	}
	for _, user := range users {
		if normalize(user.Profile.DisplayName) == name || normalize(user.RealName) == name || normalize(user.Name) == name {
			return user.ID, nil
		}
	}

	return "", domain.ErrUserResolution
}

func (c *classifier) reportUnhandled(msg *entity.InboundMessage, result *Classification) {
	log.Printf("Classification failed for message in %s (activity %q): %s", msg.ChannelID, result.Activity, result.Reason)

	if msg.TimestampRaw != "" {
		if err := c.slackClient.AddReaction("warning", slack.NewRefToMessage(msg.ChannelID, msg.TimestampRaw)); err != nil {
			log.Printf("Failed to flag unhandled message: %v", err)
		}
	}

	if c.errorChannelID != "" {
		snippet := msg.Text
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		text := fmt.Sprintf(":warning: unhandled game message in <#%s>: %s\n```%s```", msg.ChannelID, result.Reason, snippet)
		if _, _, err := c.slackClient.PostMessage(c.errorChannelID, slack.MsgOptionText(text, false)); err != nil {
			log.Printf("Failed to post to error channel: %v", err)
		}
	}
}

func renderMessage(settings *entity.UserSettings, activity string) string {
	template := settings.MessageFor(activity, domain.DefaultReminderMessage)
	return strings.ReplaceAll(template, "{command}", domain.CommandPrefix+activity)
}

// normalize returns a deterministic ASCII-escaped form of s, so substring
// checks behave identically regardless of platform unicode quirks. The same
// form is applied to message blobs and to user names before comparison.
func normalize(s string) string {
	quoted := strconv.QuoteToASCII(s)
	return quoted[1 : len(quoted)-1]
}

// normalizeMessage flattens text and every embed part into one searchable
// blob for the rule predicates.
func normalizeMessage(msg *entity.InboundMessage) string {
	parts := []string{msg.Text}
	for _, embed := range msg.Embeds {
		parts = append(parts, embed.Author, embed.Title, embed.Text, embed.Footer)
		for _, field := range embed.Fields {
			parts = append(parts, field.Title, field.Value)
		}
	}
	return normalize(strings.Join(parts, "\n"))
}
