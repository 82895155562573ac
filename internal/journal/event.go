package journal

import (
	"strings"
	"time"
)

// Type identifies the kind of a journal event.
type Type string

// Character events.
const (
	// TypeCharacterRenamed records a character name change.
	TypeCharacterRenamed Type = "character.renamed"
	// TypeXPGained records an experience gain, including any level-up.
	TypeXPGained Type = "character.xp_gained"
	// TypeStatIncreased records spending a skill point on a stat.
	TypeStatIncreased Type = "character.stat_increased"
	// TypeEnergySpent records an energy deduction.
	TypeEnergySpent Type = "character.energy_spent"
	// TypeEnergyRestored records an energy restore.
	TypeEnergyRestored Type = "character.energy_restored"
	// TypeTokensEarned records a token credit.
	TypeTokensEarned Type = "character.tokens_earned"
	// TypeTokensSpent records a token debit.
	TypeTokensSpent Type = "character.tokens_spent"
)

// Technique and core events.
const (
	// TypeTechniqueUnlocked records a technique unlock.
	TypeTechniqueUnlocked Type = "technique.unlocked"
	// TypeTechniqueUpgraded records a technique level increase.
	TypeTechniqueUpgraded Type = "technique.upgraded"
	// TypeCoreUnlocked records an LLM core unlock.
	TypeCoreUnlocked Type = "core.unlocked"
	// TypeCoreActivated records switching the active LLM core.
	TypeCoreActivated Type = "core.activated"
)

// Prompt workspace events.
const (
	// TypeConfigUpdated records a generation-parameter change.
	TypeConfigUpdated Type = "prompt.config_updated"
	// TypePromptSet records the prompt text being edited.
	TypePromptSet Type = "prompt.text_set"
	// TypeResponseSet records a simulated response being stored.
	TypeResponseSet Type = "prompt.response_set"
)

// Quest events.
const (
	// TypeQuestStarted records a quest becoming active.
	TypeQuestStarted Type = "quest.started"
	// TypeQuestCompleted records a quest completion and its rewards.
	TypeQuestCompleted Type = "quest.completed"
)

// Tutorial and phase events.
const (
	// TypeTutorialAdvanced records one tutorial step.
	TypeTutorialAdvanced Type = "tutorial.advanced"
	// TypeTutorialCompleted records the tutorial finishing.
	TypeTutorialCompleted Type = "tutorial.completed"
	// TypePhaseSet records a game phase transition.
	TypePhaseSet Type = "game.phase_set"
)

// Event is one immutable entry in the journal.
type Event struct {
	// Seq is the event sequence number, starting at 1. Assigned by the
	// store on append.
	Seq uint64
	// Timestamp is when the event was appended.
	Timestamp time.Time
	// Type identifies the kind of event.
	Type Type
	// RequestID correlates events produced by the same submission or
	// dispatch.
	RequestID string
	// PayloadJSON holds the encoded action as JSON.
	PayloadJSON []byte
}

// IsValid reports whether the event type is usable.
func (t Type) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Domain returns the domain prefix of the event type (e.g. "character",
// "quest").
func (t Type) Domain() string {
	for i, c := range t {
		if c == '.' {
			return string(t[:i])
		}
	}
	return string(t)
}
