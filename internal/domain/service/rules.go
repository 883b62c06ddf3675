package service

import (
	"regexp"
	"strings"

	"github.com/diegoclair/slack-cooldown-bot/internal/domain"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/entity"
)

// RuleKind describes how a matched rule yields a result.
type RuleKind int

const (
	// RuleCooldownText extracts the remaining wait from "wait at least **X**".
	RuleCooldownText RuleKind = iota
	// RuleFreshSuccess starts a full cooldown from the definition table.
	RuleFreshSuccess
	// RuleCancel clears any pending reminder for the activity.
	RuleCancel
	// RuleIgnore marks a known non-actionable message.
	RuleIgnore
)

// DetectionRule is one row of the declarative detection table. Predicates
// run against the normalized message blob.
type DetectionRule struct {
	Activity    string
	Kind        RuleKind
	EmbedOnly   bool
	AllOf       []string
	ClanScoped  bool
	NamePattern *regexp.Regexp // overrides the default bold-name capture
}

func (r *DetectionRule) matches(msg *entity.InboundMessage, blob string) bool {
	if r.EmbedOnly && len(msg.Embeds) == 0 {
		return false
	}
	for _, substr := range r.AllOf {
		if !strings.Contains(blob, substr) {
			return false
		}
	}
	return len(r.AllOf) > 0
}

var (
	waitPattern        = regexp.MustCompile(`wait at least \*\*(.+?)\*\*`)
	defaultNamePattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// defaultRules is the detection table for the tracked game bot. The wording
// belongs to an external bot that changes it without notice, so this table
// is the only place that knows it: extend or patch rows here, never the
// engine. Rows are ordered and written to be mutually exclusive.
func defaultRules() []DetectionRule {
	return []DetectionRule{
		// known non-actionable notices
		{Kind: RuleIgnore, AllOf: []string{"you are in the middle of a fight"}},
		{Kind: RuleIgnore, AllOf: []string{"has been sent to jail"}},

		// declined/voided actions clear the pending reminder
		{Activity: domain.ActivityQuest, Kind: RuleCancel, AllOf: []string{"you did not accept the quest"}},

		// cooldown replies carry the remaining wait verbatim
		{Activity: domain.ActivityHunt, Kind: RuleCooldownText, AllOf: []string{"you have already hunted", "wait at least"}},
		{Activity: domain.ActivityAdventure, Kind: RuleCooldownText, AllOf: []string{"you have already been in an adventure", "wait at least"}},
		{Activity: domain.ActivityTraining, Kind: RuleCooldownText, AllOf: []string{"you have already trained", "wait at least"}},
		{Activity: domain.ActivityDaily, Kind: RuleCooldownText, AllOf: []string{"you have claimed your daily rewards already", "wait at least"}},
		{Activity: domain.ActivityWeekly, Kind: RuleCooldownText, AllOf: []string{"you have claimed your weekly rewards already", "wait at least"}},
		{Activity: domain.ActivityQuest, Kind: RuleCooldownText, AllOf: []string{"you have already claimed a quest", "wait at least"}},
		{Activity: domain.ActivityWork, Kind: RuleCooldownText, AllOf: []string{"you have already worked", "wait at least"}},
		{Activity: domain.ActivityVote, Kind: RuleCooldownText, AllOf: []string{"you have voted recently", "wait at least"}},
		{Activity: domain.ActivityLootbox, Kind: RuleCooldownText, AllOf: []string{"you have already bought a lootbox", "wait at least"}},
		{Activity: domain.ActivityClanRaid, Kind: RuleCooldownText, ClanScoped: true, AllOf: []string{"your clan has already raided", "wait at least"}},

		// fresh successes start a full cooldown from the definition table
		{Activity: domain.ActivityHunt, Kind: RuleFreshSuccess, AllOf: []string{"went hunting and found"}},
		{Activity: domain.ActivityAdventure, Kind: RuleFreshSuccess, AllOf: []string{"went on an epic adventure"}},
		{Activity: domain.ActivityTraining, Kind: RuleFreshSuccess, AllOf: []string{"training completed, well done"}},
		{Activity: domain.ActivityDaily, Kind: RuleFreshSuccess, EmbedOnly: true, AllOf: []string{"here are your daily rewards"}},
		{Activity: domain.ActivityWeekly, Kind: RuleFreshSuccess, EmbedOnly: true, AllOf: []string{"here are your weekly rewards"}},
		{Activity: domain.ActivityQuest, Kind: RuleFreshSuccess, AllOf: []string{"you accepted the quest"}},
		{Activity: domain.ActivityWork, Kind: RuleFreshSuccess, AllOf: []string{"went to work and earned"}},
		{Activity: domain.ActivityVote, Kind: RuleFreshSuccess, AllOf: []string{"thanks for voting"}},
		{Activity: domain.ActivityLootbox, Kind: RuleFreshSuccess, AllOf: []string{"successfully bought a lootbox"}},
		{Activity: domain.ActivityClanRaid, Kind: RuleFreshSuccess, ClanScoped: true, AllOf: []string{"your clan raided the enemy"}},
	}
}
