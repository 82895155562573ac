package sim

import (
	"math"
	"strings"
	"testing"

	"github.com/awerner/promptquest/internal/game"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSuccessChanceFormula(t *testing.T) {
	basic := &game.LLMCore{ID: "basic-core", BaseAccuracy: 0.7}
	stats := game.CharacterStats{Clarity: 1, Conciseness: 1, Creativity: 1, Logic: 1, Debugging: 1, Configuration: 1}

	tests := []struct {
		name   string
		prompt string
		temp   float64
		want   float64
	}{
		{
			name:   "base plus stat bonus",
			prompt: "short",
			temp:   0.7,
			want:   0.71,
		},
		{
			name:   "low temperature bonus",
			prompt: "short",
			temp:   0.3,
			want:   0.81,
		},
		{
			name:   "high temperature penalty",
			prompt: "short",
			temp:   0.9,
			want:   0.61,
		},
		{
			name:   "medium prompt length bonus",
			prompt: strings.Repeat("a", 25),
			temp:   0.7,
			want:   0.76,
		},
		{
			name:   "long prompt double bonus",
			prompt: strings.Repeat("a", 55),
			temp:   0.7,
			want:   0.81,
		},
		{
			name:   "step by step bonus",
			prompt: "explain this step by step please",
			temp:   0.7,
			want:   0.86,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := game.PromptConfig{Temperature: tt.temp}
			got := SuccessChance(basic, stats, tt.prompt, cfg)
			if !almostEqual(got, tt.want) {
				t.Fatalf("SuccessChance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuccessChanceNoCore(t *testing.T) {
	got := SuccessChance(nil, game.CharacterStats{}, "anything", game.PromptConfig{Temperature: 0.7})
	if !almostEqual(got, NoCoreChance) {
		t.Fatalf("expected flat %v without a core, got %v", NoCoreChance, got)
	}
}

func TestSuccessChanceClampCeiling(t *testing.T) {
	core := &game.LLMCore{BaseAccuracy: 0.85}
	stats := game.CharacterStats{Clarity: 10, Logic: 10, Configuration: 10}
	prompt := strings.Repeat("x", 60) + " step by step"

	got := SuccessChance(core, stats, prompt, game.PromptConfig{Temperature: 0.2})
	if !almostEqual(got, ChanceCeiling) {
		t.Fatalf("expected ceiling %v, got %v", ChanceCeiling, got)
	}
}

func TestSuccessChanceClampFloor(t *testing.T) {
	core := &game.LLMCore{BaseAccuracy: 0.0}
	got := SuccessChance(core, game.CharacterStats{}, "hi", game.PromptConfig{Temperature: 0.9})
	if !almostEqual(got, ChanceFloor) {
		t.Fatalf("expected floor %v, got %v", ChanceFloor, got)
	}
}

func TestSuccessChanceAlwaysInRange(t *testing.T) {
	cores := []*game.LLMCore{
		{BaseAccuracy: 0},
		{BaseAccuracy: 0.5},
		{BaseAccuracy: 1},
	}
	prompts := []string{"", "short", strings.Repeat("p", 30), strings.Repeat("p", 80) + " step by step"}
	temps := []float64{0.1, 0.5, 0.7, 0.9, 1.0}
	statGrid := []game.CharacterStats{{}, {Clarity: 5, Logic: 5, Configuration: 5}, {Clarity: 50, Logic: 50, Configuration: 50}}

	for _, core := range cores {
		for _, prompt := range prompts {
			for _, temp := range temps {
				for _, stats := range statGrid {
					got := SuccessChance(core, stats, prompt, game.PromptConfig{Temperature: temp})
					if got < ChanceFloor || got > ChanceCeiling {
						t.Fatalf("chance %v out of range for accuracy=%v len=%d temp=%v stats=%+v",
							got, core.BaseAccuracy, len(prompt), temp, stats)
					}
				}
			}
		}
	}
}
