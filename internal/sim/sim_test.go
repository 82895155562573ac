package sim

import (
	"reflect"
	"testing"

	"github.com/awerner/promptquest/internal/game"
)

func TestSimulateDeterministic(t *testing.T) {
	req := Request{
		Prompt: "summarize the article step by step",
		Config: game.PromptConfig{Temperature: 0.7, TopK: 40, TopP: 0.9, MaxTokens: 100},
		Stats:  game.CharacterStats{Clarity: 3, Logic: 2, Configuration: 1},
		Core:   &game.LLMCore{ID: "basic-core", BaseAccuracy: 0.7},
		Seed:   42,
	}

	first := Simulate(req)
	second := Simulate(req)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different results:\n%+v\n%+v", first, second)
	}

	req.Seed = 43
	third := Simulate(req)
	if first.Roll == third.Roll {
		t.Fatalf("different seeds produced the same roll %v", first.Roll)
	}
}

func TestSimulateRollDecidesSuccess(t *testing.T) {
	req := Request{
		Prompt: "hi",
		Config: game.PromptConfig{Temperature: 0.7},
		Core:   &game.LLMCore{BaseAccuracy: 0.7},
	}

	for seed := int64(1); seed <= 50; seed++ {
		req.Seed = seed
		res := Simulate(req)
		if res.Success != (res.Roll <= res.Chance) {
			t.Fatalf("seed %d: Success=%v but Roll=%v Chance=%v", seed, res.Success, res.Roll, res.Chance)
		}
		if res.Response == "" {
			t.Fatalf("seed %d: empty response", seed)
		}
		if !res.Success && res.QuestMet {
			t.Fatalf("seed %d: quest met on failure", seed)
		}
	}
}

func TestSimulateQuestPredicate(t *testing.T) {
	quest := &game.Quest{
		ID:      "summarize-text",
		Outcome: game.ParseOutcome("CONTAINS:summary,prompt engineering"),
	}
	req := Request{
		Prompt: "summarize prompt engineering",
		Config: game.PromptConfig{Temperature: 0.2},
		Stats:  game.CharacterStats{Clarity: 10, Logic: 10, Configuration: 10},
		Core:   &game.LLMCore{BaseAccuracy: 0.95},
		Quest:  quest,
	}

	// Chance is clamped to the ceiling, so most seeds succeed. Find one
	// that does and check the tailored response satisfies the predicate.
	succeeded := false
	for seed := int64(1); seed <= 50; seed++ {
		req.Seed = seed
		res := Simulate(req)
		if !res.Success {
			continue
		}
		succeeded = true
		if !res.QuestMet {
			t.Fatalf("seed %d: tailored response did not satisfy predicate: %q", seed, res.Response)
		}
	}
	if !succeeded {
		t.Fatal("no seed in range produced a success at ceiling chance")
	}
}

func TestSimulateWithoutQuest(t *testing.T) {
	req := Request{
		Prompt: "tell me a story",
		Config: game.PromptConfig{Temperature: 0.2},
		Core:   &game.LLMCore{BaseAccuracy: 0.95},
		Seed:   3,
	}
	res := Simulate(req)
	if res.QuestMet {
		t.Fatal("QuestMet must stay false without a quest")
	}
	if res.Success && res.Response != storyResponse {
		t.Fatalf("expected the story template, got %q", res.Response)
	}
}
