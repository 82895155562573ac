package catalogcheck

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/awerner/promptquest/internal/game"
)

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("catalog-lint", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-strict", "-verbose"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.Strict || !cfg.Verbose {
		t.Fatalf("expected both flags set, got %+v", cfg)
	}
}

func TestRunReportsCatalogSummary(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), Config{}, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "4 cores, 6 techniques, 4 quests") {
		t.Fatalf("unexpected summary output:\n%s", out.String())
	}
}

func TestRunStrictFailsOnOrphans(t *testing.T) {
	// The shipped content leaves several techniques without a granting
	// quest, so strict mode must fail.
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Strict: true}, &out); err == nil {
		t.Fatal("expected strict mode to fail on unobtainable content")
	}
	if !strings.Contains(out.String(), "warning:") {
		t.Fatalf("expected warnings in output:\n%s", out.String())
	}
}

func TestCycleWarnings(t *testing.T) {
	quests := []game.Quest{
		{ID: "a", Requirements: []game.Requirement{game.QuestRequirement{QuestID: "b"}}},
		{ID: "b", Requirements: []game.Requirement{game.QuestRequirement{QuestID: "a"}}},
		{ID: "c"},
	}

	warnings := cycleWarnings(quests)
	if len(warnings) == 0 {
		t.Fatal("expected the a/b loop to be reported")
	}
	for _, w := range warnings {
		if strings.Contains(w, "quest c") {
			t.Fatalf("quest c is not on a cycle: %q", w)
		}
	}
}

func TestCycleWarningsCleanGraph(t *testing.T) {
	quests := []game.Quest{
		{ID: "a"},
		{ID: "b", Requirements: []game.Requirement{game.QuestRequirement{QuestID: "a"}}},
	}
	if warnings := cycleWarnings(quests); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}
