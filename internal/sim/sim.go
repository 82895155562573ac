package sim

import (
	"math/rand"

	"github.com/awerner/promptquest/internal/game"
)

// Request describes one prompt submission to simulate.
type Request struct {
	Prompt string
	Config game.PromptConfig
	Stats  game.CharacterStats
	// Core is the active LLM core, or nil when none is selected.
	Core *game.LLMCore
	// Quest is the active quest, or nil. Its parsed outcome shapes the
	// success response and is evaluated against the produced text.
	Quest *game.Quest
	// Seed drives the success draw and the failure-message pick.
	Seed int64
}

// Result is the simulated outcome of one submission.
type Result struct {
	// Chance is the computed success probability, clamped to
	// [ChanceFloor, ChanceCeiling].
	Chance float64
	// Roll is the uniform draw compared against Chance.
	Roll float64
	// Success is true when Roll <= Chance.
	Success bool
	// Response is the simulated model output.
	Response string
	// QuestMet is true when the submission succeeded and the active
	// quest's predicate matched the response. Always false without a
	// quest or on failure.
	QuestMet bool
}

// Simulate runs the success draw and response generation for one request.
// It is deterministic with respect to Request.Seed.
func Simulate(req Request) Result {
	rng := rand.New(rand.NewSource(req.Seed))

	result := Result{
		Chance: SuccessChance(req.Core, req.Stats, req.Prompt, req.Config),
		Roll:   rng.Float64(),
	}
	result.Success = result.Roll <= result.Chance

	if !result.Success {
		result.Response = FailureResponse(rng)
		return result
	}

	outcome := game.Outcome{Kind: game.OutcomeAny}
	if req.Quest != nil {
		outcome = req.Quest.Outcome
	}
	result.Response = SuccessResponse(req.Prompt, outcome)

	if req.Quest != nil {
		result.QuestMet = req.Quest.Outcome.Matches(result.Response)
	}
	return result
}
