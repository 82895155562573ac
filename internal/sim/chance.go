package sim

import (
	"strings"

	"github.com/awerner/promptquest/internal/game"
)

const (
	// ChanceFloor and ChanceCeiling clamp every computed success chance.
	ChanceFloor   = 0.2
	ChanceCeiling = 0.95

	// NoCoreChance is the flat probability used when no core is active.
	NoCoreChance = 0.5

	// statWeight spread over statDivisor caps the stat bonus at 0.1 for
	// 30 combined points of clarity, logic, and configuration.
	statWeight  = 0.1
	statDivisor = 30
)

// SuccessChance computes the probability that a prompt submission succeeds.
// The result is clamped to [ChanceFloor, ChanceCeiling]. A nil core yields
// the flat NoCoreChance.
func SuccessChance(core *game.LLMCore, stats game.CharacterStats, prompt string, cfg game.PromptConfig) float64 {
	if core == nil {
		return NoCoreChance
	}

	chance := core.BaseAccuracy

	relevant := float64(stats.Clarity)*statWeight +
		float64(stats.Logic)*statWeight +
		float64(stats.Configuration)*statWeight
	chance += relevant / statDivisor

	if len(prompt) > 20 {
		chance += 0.05
	}
	if len(prompt) > 50 {
		chance += 0.05
	}
	if strings.Contains(prompt, "step by step") {
		chance += 0.1
	}

	// Lower temperature is more deterministic.
	if cfg.Temperature < 0.5 {
		chance += 0.1
	} else if cfg.Temperature > 0.8 {
		chance -= 0.1
	}

	return min(max(chance, ChanceFloor), ChanceCeiling)
}
