package config

import (
	"os"
	"testing"
)

func TestParseEnv(t *testing.T) {
	type testConfig struct {
		Name  string `env:"PROMPTQUEST_TEST_NAME" envDefault:"fallback"`
		Count int    `env:"PROMPTQUEST_TEST_COUNT" envDefault:"3"`
	}

	t.Setenv("PROMPTQUEST_TEST_NAME", "from-env")

	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if cfg.Name != "from-env" {
		t.Fatalf("expected env value, got %q", cfg.Name)
	}
	if cfg.Count != 3 {
		t.Fatalf("expected default count 3, got %d", cfg.Count)
	}
}

func TestLoadDotenvMissingFileIsFine(t *testing.T) {
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	if err := LoadDotenv(); err != nil {
		t.Fatalf("a missing .env file must not error: %v", err)
	}
}
