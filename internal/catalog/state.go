package catalog

import (
	"github.com/awerner/promptquest/internal/game"
)

// Starting values for a fresh playthrough.
const (
	initialCharacterName = "Novice Engineer"
	initialXPToNextLevel = 100
	initialEnergy        = 100
	initialTokens        = 50
	tutorialTotalSteps   = 3
)

var defaultPromptConfig = game.PromptConfig{
	Temperature: 0.7,
	TopK:        40,
	TopP:        0.9,
	MaxTokens:   100,
}

// NewState assembles the initial game state for a fresh playthrough. The
// character starts at level one with every stat at one; unlocked
// techniques and the active core are derived from the catalog.
func NewState() (game.State, error) {
	cat, err := Load()
	if err != nil {
		return game.State{}, err
	}

	character := game.Character{
		Name:          initialCharacterName,
		Level:         1,
		XPToNextLevel: initialXPToNextLevel,
		Stats: game.CharacterStats{
			Clarity:       1,
			Conciseness:   1,
			Creativity:    1,
			Logic:         1,
			Debugging:     1,
			Configuration: 1,
		},
		Energy:    initialEnergy,
		MaxEnergy: initialEnergy,
		Tokens:    initialTokens,
	}
	for _, t := range cat.Techniques {
		if t.Unlocked {
			character.UnlockedTechniques = append(character.UnlockedTechniques, t.ID)
		}
	}

	activeCore := ""
	for _, c := range cat.Cores {
		if c.Unlocked {
			activeCore = c.ID
			break
		}
	}

	return game.State{
		Character:    character,
		Cores:        cat.Cores,
		Techniques:   cat.Techniques,
		Quests:       cat.Quests,
		ActiveCore:   activeCore,
		Tutorial:     game.TutorialProgress{TotalSteps: tutorialTotalSteps},
		PromptConfig: defaultPromptConfig,
		Phase:        game.PhaseIntro,
	}, nil
}
