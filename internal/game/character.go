package game

import (
	apperrors "github.com/awerner/promptquest/internal/errors"
)

const (
	// LevelUpStatPoints is the number of unassigned points granted per level.
	LevelUpStatPoints = 3
	// LevelUpMaxEnergyGain is the max-energy growth per level.
	LevelUpMaxEnergyGain = 10
	// XPCurveNumerator and XPCurveDenominator define the 1.5x threshold
	// growth applied (with floor) at each level-up.
	XPCurveNumerator   = 3
	XPCurveDenominator = 2
)

var (
	// ErrNoUnassignedPoints indicates a stat increase with no points to spend.
	ErrNoUnassignedPoints = apperrors.New(apperrors.CodeCharacterNoPoints, "no unassigned stat points")
	// ErrInsufficientEnergy indicates an energy spend exceeding the current energy.
	ErrInsufficientEnergy = apperrors.New(apperrors.CodeCharacterInsufficientEnergy, "energy is insufficient")
	// ErrInsufficientTokens indicates a token spend exceeding the current balance.
	ErrInsufficientTokens = apperrors.New(apperrors.CodeCharacterInsufficientTokens, "tokens are insufficient")
	// ErrInvalidAmount indicates a negative resource mutation amount.
	ErrInvalidAmount = apperrors.New(apperrors.CodeCharacterInvalidAmount, "amount must not be negative")
	// ErrUnknownStat indicates a stat name outside the six counters.
	ErrUnknownStat = apperrors.New(apperrors.CodeCharacterUnknownStat, "unknown stat")
)

// Character is the player aggregate: progression, resources, and quest links.
type Character struct {
	Name             string
	Level            int
	XP               int
	XPToNextLevel    int
	Stats            CharacterStats
	UnassignedPoints int
	Energy           int
	MaxEnergy        int
	Tokens           int
	// CompletedQuests is append-only and duplicate-free.
	CompletedQuests []string
	// UnlockedTechniques is append-only and duplicate-free.
	UnlockedTechniques []string
	// ActiveQuest references a quest id, or is empty for none.
	ActiveQuest string
}

// HasCompletedQuest reports whether the quest id is in the completed set.
func (c Character) HasCompletedQuest(id string) bool {
	for _, q := range c.CompletedQuests {
		if q == id {
			return true
		}
	}
	return false
}

// HasTechnique reports whether the technique id is in the unlocked set.
func (c Character) HasTechnique(id string) bool {
	for _, t := range c.UnlockedTechniques {
		if t == id {
			return true
		}
	}
	return false
}

// ApplyXPGain returns a character with the experience added. Crossing the
// level threshold triggers a single level-up: the overflow is kept as the
// new XP, the threshold grows by 1.5x (floored), three stat points are
// granted, energy refills to the previous maximum, and the maximum grows.
// Overflow beyond a second threshold is not re-checked.
func ApplyXPGain(c Character, amount int) (Character, bool, error) {
	if amount < 0 {
		return Character{}, false, ErrInvalidAmount
	}

	updated := c
	newXP := c.XP + amount
	if newXP < c.XPToNextLevel {
		updated.XP = newXP
		return updated, false, nil
	}

	updated.Level = c.Level + 1
	updated.XP = newXP - c.XPToNextLevel
	updated.XPToNextLevel = c.XPToNextLevel * XPCurveNumerator / XPCurveDenominator
	updated.UnassignedPoints = c.UnassignedPoints + LevelUpStatPoints
	updated.Energy = c.MaxEnergy
	updated.MaxEnergy = c.MaxEnergy + LevelUpMaxEnergyGain
	return updated, true, nil
}

// ApplyStatIncrease spends one unassigned point on the given stat.
// The increase is refused, not clamped, when no points remain.
func ApplyStatIncrease(c Character, stat Stat) (Character, int, int, error) {
	if !stat.IsValid() {
		return Character{}, 0, 0, ErrUnknownStat
	}
	if c.UnassignedPoints <= 0 {
		return Character{}, 0, 0, ErrNoUnassignedPoints
	}

	before := c.Stats.Value(stat)
	updated := c
	updated.Stats = c.Stats.WithIncrement(stat, 1)
	updated.UnassignedPoints = c.UnassignedPoints - 1
	return updated, before, updated.Stats.Value(stat), nil
}

// ApplyEnergySpend returns a character with reduced energy.
// The spend is refused, not clamped, when energy is insufficient.
func ApplyEnergySpend(c Character, amount int) (Character, int, int, error) {
	if amount < 0 {
		return Character{}, 0, 0, ErrInvalidAmount
	}
	if c.Energy < amount {
		return Character{}, 0, 0, ErrInsufficientEnergy
	}

	before := c.Energy
	updated := c
	updated.Energy = before - amount
	return updated, before, updated.Energy, nil
}

// ApplyEnergyRestore returns a character with energy raised, capped at the
// character's maximum.
func ApplyEnergyRestore(c Character, amount int) (Character, int, int, error) {
	if amount < 0 {
		return Character{}, 0, 0, ErrInvalidAmount
	}

	before := c.Energy
	updated := c
	updated.Energy = min(before+amount, c.MaxEnergy)
	return updated, before, updated.Energy, nil
}

// ApplyTokensEarn returns a character with tokens added.
func ApplyTokensEarn(c Character, amount int) (Character, int, int, error) {
	if amount < 0 {
		return Character{}, 0, 0, ErrInvalidAmount
	}

	before := c.Tokens
	updated := c
	updated.Tokens = before + amount
	return updated, before, updated.Tokens, nil
}

// ApplyTokensSpend returns a character with tokens deducted.
// The spend is refused, not clamped, when the balance is insufficient.
func ApplyTokensSpend(c Character, amount int) (Character, int, int, error) {
	if amount < 0 {
		return Character{}, 0, 0, ErrInvalidAmount
	}
	if c.Tokens < amount {
		return Character{}, 0, 0, ErrInsufficientTokens
	}

	before := c.Tokens
	updated := c
	updated.Tokens = before - amount
	return updated, before, updated.Tokens, nil
}
