package game

// LLMCore is a simulated language-model backend. Everything but the
// Unlocked flag is immutable after catalog load.
type LLMCore struct {
	ID          string
	Name        string
	Description string
	// BaseCost is the token cost per use. Declared by the content but not
	// deducted by the simulator.
	BaseCost int
	// BaseAccuracy is the base success probability in [0, 1].
	BaseAccuracy float64
	// Hallucination, CreativityBias, and LogicBias are flavor parameters;
	// the success formula does not read them.
	Hallucination  float64
	CreativityBias float64
	LogicBias      float64
	Unlocked       bool
	Icon           string
}

// Technique is an unlockable prompting strategy. Level 0 means locked;
// unlocking sets it to 1 and upgrades raise it up to MaxLevel.
type Technique struct {
	ID          string
	Name        string
	Description string
	Level       int
	MaxLevel    int
	// EnergyCost is declared by the content but not deducted on use.
	EnergyCost int
	Unlocked   bool
	Icon       string
}
