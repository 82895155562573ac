package game

// PromptConfig holds the generation parameters the player tunes.
// The presentation layer owns the slider bounds (temperature 0.1..1,
// max tokens 10..200); the transition function merges patches verbatim.
type PromptConfig struct {
	Temperature float64
	TopK        int
	TopP        float64
	MaxTokens   int
}

// PromptConfigPatch describes optional fields for updating a prompt config.
type PromptConfigPatch struct {
	Temperature *float64 `json:"temperature,omitempty"`
	TopK        *int     `json:"top_k,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// Merge applies the patch to an existing config, returning a new config.
func (p PromptConfigPatch) Merge(existing PromptConfig) PromptConfig {
	result := existing
	if p.Temperature != nil {
		result.Temperature = *p.Temperature
	}
	if p.TopK != nil {
		result.TopK = *p.TopK
	}
	if p.TopP != nil {
		result.TopP = *p.TopP
	}
	if p.MaxTokens != nil {
		result.MaxTokens = *p.MaxTokens
	}
	return result
}

// TutorialProgress tracks the guided-introduction steps.
type TutorialProgress struct {
	Completed   bool
	CurrentStep int
	TotalSteps  int
}

// Phase is the top-level game phase.
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhaseTutorial Phase = "tutorial"
	PhaseMain     Phase = "main"
	PhaseQuest    Phase = "quest"
)

// IsValid reports whether the phase is one of the known phases.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseIntro, PhaseTutorial, PhaseMain, PhaseQuest:
		return true
	default:
		return false
	}
}
