package game

// QuestType classifies a quest within the campaign structure.
type QuestType string

const (
	QuestTypeTutorial  QuestType = "tutorial"
	QuestTypeMain      QuestType = "main"
	QuestTypeSide      QuestType = "side"
	QuestTypeChallenge QuestType = "challenge"
)

// IsValid reports whether the quest type is one of the known kinds.
func (t QuestType) IsValid() bool {
	switch t {
	case QuestTypeTutorial, QuestTypeMain, QuestTypeSide, QuestTypeChallenge:
		return true
	default:
		return false
	}
}

// Difficulty grades a quest.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// IsValid reports whether the difficulty is one of the known grades.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	default:
		return false
	}
}

// Requirement gates a quest's availability. Exactly one variant applies.
type Requirement interface {
	isRequirement()
}

// LevelRequirement requires the character to reach a minimum level.
type LevelRequirement struct {
	Min int
}

// StatRequirement requires a stat counter to reach a minimum value.
type StatRequirement struct {
	Stat Stat
	Min  int
}

// TechniqueRequirement requires a technique to be unlocked.
type TechniqueRequirement struct {
	TechniqueID string
}

// QuestRequirement requires another quest to be completed first.
type QuestRequirement struct {
	QuestID string
}

func (LevelRequirement) isRequirement()     {}
func (StatRequirement) isRequirement()      {}
func (TechniqueRequirement) isRequirement() {}
func (QuestRequirement) isRequirement()     {}

// Reward is granted on quest completion. Exactly one variant applies.
type Reward interface {
	isReward()
}

// XPReward grants experience, which may trigger a level-up.
type XPReward struct {
	Amount int
}

// TokenReward grants tokens.
type TokenReward struct {
	Amount int
}

// TechniqueReward unlocks a technique.
type TechniqueReward struct {
	TechniqueID string
}

// CoreReward unlocks an LLM core.
type CoreReward struct {
	CoreID string
}

// StatBoostReward raises a stat directly, without spending a point.
type StatBoostReward struct {
	Stat   Stat
	Amount int
}

func (XPReward) isReward()        {}
func (TokenReward) isReward()     {}
func (TechniqueReward) isReward() {}
func (CoreReward) isReward()      {}
func (StatBoostReward) isReward() {}

// Quest is a scoped objective with gating requirements, completion rewards,
// and a success predicate evaluated against simulated output.
type Quest struct {
	ID          string
	Name        string
	Description string
	Type        QuestType
	Difficulty  Difficulty
	Objective   string
	// Requirements and Rewards are immutable after catalog load.
	Requirements []Requirement
	Rewards      []Reward
	// Available gates visibility; it flips true when requirements are met.
	Available bool
	// Completed is terminal: it flips true exactly once.
	Completed bool
	// PromptTemplate optionally seeds the prompt editor.
	PromptTemplate string
	// Outcome is the parsed success predicate.
	Outcome Outcome
	Hints   []string
}
