package domain

import "time"

// Activity tags for tracked cooldown-bearing commands.
const (
	ActivityHunt      = "hunt"
	ActivityAdventure = "adventure"
	ActivityTraining  = "training"
	ActivityDaily     = "daily"
	ActivityWeekly    = "weekly"
	ActivityQuest     = "quest"
	ActivityWork      = "work"
	ActivityVote      = "vote"
	ActivityLootbox   = "lootbox"
	ActivityClanRaid  = "clanraid"
	ActivityCustom    = "custom"
)

// CooldownDefinition is the static reference data for an activity: the base
// cooldown, whether the donor tier shortens it, and the percentage reduction
// of the currently running game event (0 when no event is active).
type CooldownDefinition struct {
	Activity       string
	Base           time.Duration
	DonorAffected  bool
	EventReduction float64
}

// Cooldowns is the reference table used when a success message carries no
// explicit duration text.
var Cooldowns = map[string]CooldownDefinition{
	ActivityHunt:      {Activity: ActivityHunt, Base: 60 * time.Second, DonorAffected: true},
	ActivityAdventure: {Activity: ActivityAdventure, Base: time.Hour, DonorAffected: true},
	ActivityTraining:  {Activity: ActivityTraining, Base: 15 * time.Minute, DonorAffected: true},
	ActivityDaily:     {Activity: ActivityDaily, Base: 24 * time.Hour, DonorAffected: true},
	ActivityWeekly:    {Activity: ActivityWeekly, Base: 7 * 24 * time.Hour},
	ActivityQuest:     {Activity: ActivityQuest, Base: 6 * time.Hour, DonorAffected: true},
	ActivityWork:      {Activity: ActivityWork, Base: 5 * time.Minute, DonorAffected: true},
	ActivityVote:      {Activity: ActivityVote, Base: 12 * time.Hour},
	ActivityLootbox:   {Activity: ActivityLootbox, Base: 3 * time.Hour, DonorAffected: true},
	ActivityClanRaid:  {Activity: ActivityClanRaid, Base: 2 * time.Hour},
}

// CooldownFor looks up the cooldown definition for an activity.
func CooldownFor(activity string) (CooldownDefinition, bool) {
	def, ok := Cooldowns[activity]
	return def, ok
}

// KnownActivity reports whether an activity tag is tracked or custom.
func KnownActivity(activity string) bool {
	if activity == ActivityCustom {
		return true
	}
	_, ok := Cooldowns[activity]
	return ok
}

// MaxDonorTier is the highest supported donor tier.
const MaxDonorTier = 3

// donorMultipliers maps donor tiers to cooldown multipliers.
var donorMultipliers = map[int]float64{
	0: 1.0,
	1: 0.9,
	2: 0.8,
	3: 0.65,
}

// DonorMultiplier returns the cooldown multiplier for a donor tier. Unknown
// tiers fall back to no reduction.
func DonorMultiplier(tier int) float64 {
	if m, ok := donorMultipliers[tier]; ok {
		return m
	}
	return 1.0
}

// DefaultReminderMessage is used when the user has no template configured for
// an activity. The {command} placeholder is substituted at creation time.
const DefaultReminderMessage = "your `{command}` cooldown is over!"

// CommandPrefix is the chat prefix of the tracked game bot's commands.
const CommandPrefix = "rpg "
