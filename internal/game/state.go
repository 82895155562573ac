package game

// State is the root aggregate: exactly one instance exists per running game
// session, and the session dispatcher is its only writer. Collaborators read
// clones and mutate exclusively by dispatching actions.
type State struct {
	Character Character
	// Cores, Techniques, and Quests are catalog-derived collections; only
	// their unlock/availability/completion flags and technique levels change.
	Cores      []LLMCore
	Techniques []Technique
	Quests     []Quest
	// ActiveCore references a core id. No validation ties it to an
	// unlocked core.
	ActiveCore   string
	Tutorial     TutorialProgress
	PromptConfig PromptConfig
	// CurrentPrompt and LastResponse are transient; an empty LastResponse
	// means no response has been produced yet.
	CurrentPrompt string
	LastResponse  string
	Phase         Phase
}

// Clone returns a deep copy safe to mutate independently of the receiver.
// Requirement, reward, hint, and keyword lists are immutable after catalog
// load and stay shared.
func (s State) Clone() State {
	next := s
	next.Cores = append([]LLMCore(nil), s.Cores...)
	next.Techniques = append([]Technique(nil), s.Techniques...)
	next.Quests = append([]Quest(nil), s.Quests...)
	next.Character.CompletedQuests = append([]string(nil), s.Character.CompletedQuests...)
	next.Character.UnlockedTechniques = append([]string(nil), s.Character.UnlockedTechniques...)
	return next
}

// Core returns the core with the given id.
func (s State) Core(id string) (LLMCore, bool) {
	for _, c := range s.Cores {
		if c.ID == id {
			return c, true
		}
	}
	return LLMCore{}, false
}

// Technique returns the technique with the given id.
func (s State) Technique(id string) (Technique, bool) {
	for _, t := range s.Techniques {
		if t.ID == id {
			return t, true
		}
	}
	return Technique{}, false
}

// Quest returns the quest with the given id.
func (s State) Quest(id string) (Quest, bool) {
	for _, q := range s.Quests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

// ActiveLLMCore returns the currently selected core.
func (s State) ActiveLLMCore() (LLMCore, bool) {
	return s.Core(s.ActiveCore)
}

// ActiveQuest returns the quest the character is pursuing, if any.
func (s State) ActiveQuest() (Quest, bool) {
	if s.Character.ActiveQuest == "" {
		return Quest{}, false
	}
	return s.Quest(s.Character.ActiveQuest)
}

func (s State) coreIndex(id string) int {
	for i := range s.Cores {
		if s.Cores[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) techniqueIndex(id string) int {
	for i := range s.Techniques {
		if s.Techniques[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) questIndex(id string) int {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return i
		}
	}
	return -1
}
