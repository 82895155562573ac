package catalog

import (
	"testing"

	"github.com/awerner/promptquest/internal/game"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cat.Cores) != 4 {
		t.Fatalf("expected 4 cores, got %d", len(cat.Cores))
	}
	if len(cat.Techniques) != 6 {
		t.Fatalf("expected 6 techniques, got %d", len(cat.Techniques))
	}
	if len(cat.Quests) != 4 {
		t.Fatalf("expected 4 quests, got %d", len(cat.Quests))
	}
}

func TestLoadReturnsFreshCopies(t *testing.T) {
	first, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	first.Cores[0].Name = "Mutated"

	second, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second.Cores[0].Name != "Basic Core" {
		t.Fatalf("mutating a loaded catalog leaked into the cache: %q", second.Cores[0].Name)
	}
}

func TestQuestWiring(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	byID := make(map[string]game.Quest, len(cat.Quests))
	for _, q := range cat.Quests {
		byID[q.ID] = q
	}

	tutorial, ok := byID["tutorial-basics"]
	if !ok {
		t.Fatal("missing tutorial-basics quest")
	}
	if !tutorial.Available {
		t.Fatal("tutorial-basics must start available")
	}
	if tutorial.Outcome.Kind != game.OutcomeContains || len(tutorial.Outcome.Keywords) != 3 {
		t.Fatalf("unexpected tutorial outcome: %+v", tutorial.Outcome)
	}

	summarize, ok := byID["summarize-text"]
	if !ok {
		t.Fatal("missing summarize-text quest")
	}
	if summarize.Available {
		t.Fatal("summarize-text must start gated")
	}
	if len(summarize.Requirements) != 1 {
		t.Fatalf("expected one requirement, got %d", len(summarize.Requirements))
	}
	if req, ok := summarize.Requirements[0].(game.QuestRequirement); !ok || req.QuestID != "tutorial-basics" {
		t.Fatalf("expected a quest requirement on tutorial-basics, got %#v", summarize.Requirements[0])
	}
	if summarize.Outcome.Kind != game.OutcomeBulletList || summarize.Outcome.BulletCount != 3 {
		t.Fatalf("unexpected summarize outcome: %+v", summarize.Outcome)
	}

	code, ok := byID["code-generation"]
	if !ok {
		t.Fatal("missing code-generation quest")
	}
	if req, ok := code.Requirements[0].(game.LevelRequirement); !ok || req.Min != 2 {
		t.Fatalf("expected a level 2 requirement, got %#v", code.Requirements[0])
	}
	foundCore := false
	for _, reward := range code.Rewards {
		if r, ok := reward.(game.CoreReward); ok && r.CoreID == "logic-core" {
			foundCore = true
		}
	}
	if !foundCore {
		t.Fatal("code-generation must reward the logic core")
	}
	if code.Outcome.Kind != game.OutcomeAny {
		t.Fatalf("quests without an expected outcome default to any, got %+v", code.Outcome)
	}
}

func TestNewState(t *testing.T) {
	state, err := NewState()
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	c := state.Character
	if c.Name != "Novice Engineer" || c.Level != 1 || c.XP != 0 || c.XPToNextLevel != 100 {
		t.Fatalf("unexpected starting character: %+v", c)
	}
	if c.Energy != 100 || c.MaxEnergy != 100 || c.Tokens != 50 || c.UnassignedPoints != 0 {
		t.Fatalf("unexpected starting resources: %+v", c)
	}
	for _, stat := range game.AllStats {
		if got := c.Stats.Value(stat); got != 1 {
			t.Fatalf("stat %s starts at %d, want 1", stat, got)
		}
	}
	if len(c.UnlockedTechniques) != 1 || c.UnlockedTechniques[0] != "zero-shot" {
		t.Fatalf("expected only zero-shot unlocked, got %v", c.UnlockedTechniques)
	}
	if state.ActiveCore != "basic-core" {
		t.Fatalf("expected basic-core active, got %q", state.ActiveCore)
	}
	if state.Phase != game.PhaseIntro {
		t.Fatalf("expected intro phase, got %q", state.Phase)
	}
	if state.Tutorial.Completed || state.Tutorial.CurrentStep != 0 || state.Tutorial.TotalSteps != 3 {
		t.Fatalf("unexpected tutorial progress: %+v", state.Tutorial)
	}
	want := game.PromptConfig{Temperature: 0.7, TopK: 40, TopP: 0.9, MaxTokens: 100}
	if state.PromptConfig != want {
		t.Fatalf("unexpected prompt config: %+v", state.PromptConfig)
	}
}

func TestDecodeQuestsRejectsUnknownReferences(t *testing.T) {
	raw := []byte(`
quests:
  - id: broken
    name: Broken
    type: main
    difficulty: beginner
    rewards:
      - type: core
        target: missing-core
`)
	if _, err := decodeQuests(raw, nil, nil); err == nil {
		t.Fatal("expected an unknown reference error")
	}
}

func TestDecodeCoresRejectsOutOfRangeAccuracy(t *testing.T) {
	raw := []byte(`
cores:
  - id: bad
    name: Bad
    base_accuracy: 1.5
`)
	if _, err := decodeCores(raw); err == nil {
		t.Fatal("expected an invalid value error")
	}
}
