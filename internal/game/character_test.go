package game

import (
	"errors"
	"testing"
)

func baseCharacter() Character {
	return Character{
		Name:          "Novice Engineer",
		Level:         1,
		XP:            0,
		XPToNextLevel: 100,
		Stats: CharacterStats{
			Clarity:       1,
			Conciseness:   1,
			Creativity:    1,
			Logic:         1,
			Debugging:     1,
			Configuration: 1,
		},
		Energy:    100,
		MaxEnergy: 100,
		Tokens:    50,
	}
}

func TestApplyXPGainBelowThreshold(t *testing.T) {
	c := baseCharacter()
	updated, leveled, err := ApplyXPGain(c, 40)
	if err != nil {
		t.Fatalf("apply xp gain: %v", err)
	}
	if leveled {
		t.Fatal("expected no level-up below threshold")
	}
	if updated.XP != 40 {
		t.Fatalf("expected xp 40, got %d", updated.XP)
	}
	if updated.Level != 1 {
		t.Fatalf("expected level unchanged, got %d", updated.Level)
	}
}

func TestApplyXPGainLevelUpArithmetic(t *testing.T) {
	c := baseCharacter()
	c.XP = 90

	updated, leveled, err := ApplyXPGain(c, 20)
	if err != nil {
		t.Fatalf("apply xp gain: %v", err)
	}
	if !leveled {
		t.Fatal("expected level-up")
	}
	if updated.Level != 2 {
		t.Fatalf("expected level 2, got %d", updated.Level)
	}
	if updated.XP != 10 {
		t.Fatalf("expected overflow xp 10, got %d", updated.XP)
	}
	if updated.XPToNextLevel != 150 {
		t.Fatalf("expected next threshold 150, got %d", updated.XPToNextLevel)
	}
	if updated.UnassignedPoints != 3 {
		t.Fatalf("expected 3 unassigned points, got %d", updated.UnassignedPoints)
	}
	if updated.Energy != 100 {
		t.Fatalf("expected energy refilled to old max 100, got %d", updated.Energy)
	}
	if updated.MaxEnergy != 110 {
		t.Fatalf("expected max energy 110, got %d", updated.MaxEnergy)
	}
}

func TestApplyXPGainSingleLevelOnly(t *testing.T) {
	// Overflow past a second threshold accumulates without cascading.
	c := baseCharacter()
	updated, leveled, err := ApplyXPGain(c, 300)
	if err != nil {
		t.Fatalf("apply xp gain: %v", err)
	}
	if !leveled {
		t.Fatal("expected level-up")
	}
	if updated.Level != 2 {
		t.Fatalf("expected a single level-up, got level %d", updated.Level)
	}
	if updated.XP != 200 {
		t.Fatalf("expected overflow xp 200, got %d", updated.XP)
	}
}

func TestApplyXPGainNegative(t *testing.T) {
	_, _, err := ApplyXPGain(baseCharacter(), -5)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestApplyStatIncrease(t *testing.T) {
	c := baseCharacter()
	c.UnassignedPoints = 2

	updated, before, after, err := ApplyStatIncrease(c, StatLogic)
	if err != nil {
		t.Fatalf("apply stat increase: %v", err)
	}
	if before != 1 || after != 2 {
		t.Fatalf("expected logic 1 -> 2, got %d -> %d", before, after)
	}
	if updated.UnassignedPoints != 1 {
		t.Fatalf("expected 1 point left, got %d", updated.UnassignedPoints)
	}
}

func TestApplyStatIncreaseNoPoints(t *testing.T) {
	_, _, _, err := ApplyStatIncrease(baseCharacter(), StatClarity)
	if !errors.Is(err, ErrNoUnassignedPoints) {
		t.Fatalf("expected ErrNoUnassignedPoints, got %v", err)
	}
}

func TestApplyStatIncreaseUnknownStat(t *testing.T) {
	c := baseCharacter()
	c.UnassignedPoints = 1
	_, _, _, err := ApplyStatIncrease(c, Stat("charisma"))
	if !errors.Is(err, ErrUnknownStat) {
		t.Fatalf("expected ErrUnknownStat, got %v", err)
	}
}

func TestApplyEnergySpend(t *testing.T) {
	updated, before, after, err := ApplyEnergySpend(baseCharacter(), 10)
	if err != nil {
		t.Fatalf("apply energy spend: %v", err)
	}
	if before != 100 || after != 90 {
		t.Fatalf("expected 100 -> 90, got %d -> %d", before, after)
	}
	if updated.Energy != 90 {
		t.Fatalf("expected energy 90, got %d", updated.Energy)
	}
}

func TestApplyEnergySpendInsufficient(t *testing.T) {
	c := baseCharacter()
	c.Energy = 5
	_, _, _, err := ApplyEnergySpend(c, 10)
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("expected ErrInsufficientEnergy, got %v", err)
	}
}

func TestApplyEnergyRestoreCapped(t *testing.T) {
	c := baseCharacter()
	c.Energy = 95
	updated, _, after, err := ApplyEnergyRestore(c, 20)
	if err != nil {
		t.Fatalf("apply energy restore: %v", err)
	}
	if after != 100 || updated.Energy != 100 {
		t.Fatalf("expected energy capped at 100, got %d", updated.Energy)
	}
}

func TestApplyTokens(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		spend   int
		earn    int
		want    int
		wantErr error
	}{
		{name: "earn", start: 50, earn: 30, want: 80},
		{name: "spend", start: 50, spend: 20, want: 30},
		{name: "spend all", start: 50, spend: 50, want: 0},
		{name: "overspend refused", start: 50, spend: 51, wantErr: ErrInsufficientTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseCharacter()
			c.Tokens = tt.start

			var err error
			if tt.earn > 0 {
				c, _, _, err = ApplyTokensEarn(c, tt.earn)
			} else {
				c, _, _, err = ApplyTokensSpend(c, tt.spend)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Tokens != tt.want {
				t.Fatalf("expected tokens %d, got %d", tt.want, c.Tokens)
			}
		})
	}
}
