package game

// Action is the closed set of state transitions. The sealed interface keeps
// every mutation enumerable in Apply's type switch.
type Action interface {
	isAction()
}

// SetCharacterName sets the character's display name.
type SetCharacterName struct {
	Name string
}

// GainXP adds experience, triggering a level-up at the threshold.
type GainXP struct {
	Amount int
}

// IncreaseStat spends one unassigned point on a stat.
type IncreaseStat struct {
	Stat Stat
}

// SpendEnergy deducts energy; refused when insufficient.
type SpendEnergy struct {
	Amount int
}

// RestoreEnergy raises energy, capped at the maximum.
type RestoreEnergy struct {
	Amount int
}

// EarnTokens adds tokens.
type EarnTokens struct {
	Amount int
}

// SpendTokens deducts tokens; refused when insufficient.
type SpendTokens struct {
	Amount int
}

// UnlockTechnique unlocks a technique and records it on the character.
type UnlockTechnique struct {
	TechniqueID string
}

// UpgradeTechnique raises a technique's level, up to its maximum.
type UpgradeTechnique struct {
	TechniqueID string
}

// UnlockCore unlocks an LLM core.
type UnlockCore struct {
	CoreID string
}

// SetActiveCore selects the core used by subsequent submissions.
type SetActiveCore struct {
	CoreID string
}

// UpdatePromptConfig merges the patch into the prompt configuration.
type UpdatePromptConfig struct {
	Patch PromptConfigPatch
}

// SetCurrentPrompt replaces the prompt text being edited.
type SetCurrentPrompt struct {
	Text string
}

// SetResponse records the latest simulated response.
type SetResponse struct {
	Text string
}

// StartQuest marks a quest as the character's active pursuit.
type StartQuest struct {
	QuestID string
}

// CompleteQuest finishes a quest and applies its rewards atomically.
type CompleteQuest struct {
	QuestID string
}

// AdvanceTutorial moves the guided introduction one step forward.
type AdvanceTutorial struct{}

// CompleteTutorial finishes the introduction and enters the main phase.
type CompleteTutorial struct{}

// SetGamePhase switches the top-level phase.
type SetGamePhase struct {
	Phase Phase
}

func (SetCharacterName) isAction()   {}
func (GainXP) isAction()             {}
func (IncreaseStat) isAction()       {}
func (SpendEnergy) isAction()        {}
func (RestoreEnergy) isAction()      {}
func (EarnTokens) isAction()         {}
func (SpendTokens) isAction()        {}
func (UnlockTechnique) isAction()    {}
func (UpgradeTechnique) isAction()   {}
func (UnlockCore) isAction()         {}
func (SetActiveCore) isAction()      {}
func (UpdatePromptConfig) isAction() {}
func (SetCurrentPrompt) isAction()   {}
func (SetResponse) isAction()        {}
func (StartQuest) isAction()         {}
func (CompleteQuest) isAction()      {}
func (AdvanceTutorial) isAction()    {}
func (CompleteTutorial) isAction()   {}
func (SetGamePhase) isAction()       {}
