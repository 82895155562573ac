package game

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected default seed 0, got %d", cfg.Seed)
	}
	if cfg.Delay != 1500*time.Millisecond {
		t.Fatalf("expected default delay 1.5s, got %v", cfg.Delay)
	}
	if cfg.Name != "" {
		t.Fatalf("expected empty name, got %q", cfg.Name)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "42", "-delay", "10ms", "-name", "Ada"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Delay != 10*time.Millisecond {
		t.Fatalf("expected 10ms delay, got %v", cfg.Delay)
	}
	if cfg.Name != "Ada" {
		t.Fatalf("expected name Ada, got %q", cfg.Name)
	}
}
