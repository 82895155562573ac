// Package game parses game command flags and starts the terminal client.
package game

import (
	"context"
	"flag"
	"time"

	"github.com/awerner/promptquest/internal/catalog"
	"github.com/awerner/promptquest/internal/config"
	gamestate "github.com/awerner/promptquest/internal/game"
	"github.com/awerner/promptquest/internal/random"
	"github.com/awerner/promptquest/internal/session"
	"github.com/awerner/promptquest/internal/tui"
)

// Config holds game command configuration.
type Config struct {
	// Seed makes a whole playthrough reproducible. Zero draws fresh
	// seeds per submission.
	Seed int64 `env:"PROMPTQUEST_SEED"`
	// Delay simulates the model thinking before it answers.
	Delay time.Duration `env:"PROMPTQUEST_RESPONSE_DELAY" envDefault:"1500ms"`
	// Name pre-fills the character name and skips the naming prompt.
	Name string `env:"PROMPTQUEST_PLAYER_NAME"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := config.LoadDotenv(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Deterministic seed for outcome draws (0 for random)")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Simulated response delay")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "Character name")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds a fresh session from the embedded catalog and hands it to
// the terminal client.
func Run(ctx context.Context, cfg Config) error {
	initial, err := catalog.NewState()
	if err != nil {
		return err
	}

	sess := session.New(initial,
		session.WithDelay(cfg.Delay),
		session.WithSeedSource(random.SeedSource(cfg.Seed)),
	)
	if cfg.Name != "" {
		sess.Dispatch(gamestate.SetCharacterName{Name: cfg.Name})
	}

	return tui.Run(ctx, sess)
}
