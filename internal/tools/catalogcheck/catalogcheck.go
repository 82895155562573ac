// Package catalogcheck lints the embedded game content.
//
// Load already rejects structural problems (duplicate ids, dangling
// references, out-of-range values). This tool layers reachability checks
// on top: content that no reward grants and no starting unlock exposes,
// and quest gating cycles that would make a quest impossible to reach.
package catalogcheck

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/awerner/promptquest/internal/catalog"
	"github.com/awerner/promptquest/internal/game"
)

// Config holds configuration for the catalog checker.
type Config struct {
	// Strict turns reachability warnings into a failure.
	Strict bool
	// Verbose prints per-quest gating detail.
	Verbose bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.BoolVar(&cfg.Strict, "strict", false, "fail on reachability warnings")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print per-quest gating detail")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run validates the embedded catalog and reports reachability warnings.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	fmt.Fprintf(out, "catalog: %d cores, %d techniques, %d quests\n",
		len(cat.Cores), len(cat.Techniques), len(cat.Quests))

	if cfg.Verbose {
		for _, q := range cat.Quests {
			fmt.Fprintf(out, "quest %s: %s, %d requirement(s), %d reward(s)\n",
				q.ID, q.Difficulty, len(q.Requirements), len(q.Rewards))
		}
	}

	warnings := append(orphanWarnings(cat), cycleWarnings(cat.Quests)...)
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}

	if cfg.Strict && len(warnings) > 0 {
		return fmt.Errorf("%d reachability warning(s)", len(warnings))
	}
	return nil
}

// orphanWarnings flags cores and techniques a player can never obtain:
// locked at start and granted by no quest reward.
func orphanWarnings(cat catalog.Catalog) []string {
	granted := map[string]bool{}
	for _, q := range cat.Quests {
		for _, r := range q.Rewards {
			switch reward := r.(type) {
			case game.TechniqueReward:
				granted[reward.TechniqueID] = true
			case game.CoreReward:
				granted[reward.CoreID] = true
			}
		}
	}

	var warnings []string
	for _, c := range cat.Cores {
		if !c.Unlocked && !granted[c.ID] {
			warnings = append(warnings, fmt.Sprintf("core %s is unobtainable through quests", c.ID))
		}
	}
	for _, t := range cat.Techniques {
		if !t.Unlocked && !granted[t.ID] {
			warnings = append(warnings, fmt.Sprintf("technique %s is unobtainable through quests", t.ID))
		}
	}
	return warnings
}

// cycleWarnings flags quests whose quest-requirement chain loops back on
// itself, which would leave every quest in the loop gated forever.
func cycleWarnings(quests []game.Quest) []string {
	deps := make(map[string][]string, len(quests))
	for _, q := range quests {
		for _, r := range q.Requirements {
			if req, ok := r.(game.QuestRequirement); ok {
				deps[q.ID] = append(deps[q.ID], req.QuestID)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(quests))

	var cyclic []string
	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case visiting:
			return true
		case done:
			return false
		}
		state[id] = visiting
		for _, dep := range deps[id] {
			if visit(dep) {
				state[id] = done
				return true
			}
		}
		state[id] = done
		return false
	}

	for _, q := range quests {
		if state[q.ID] == unvisited && visit(q.ID) {
			cyclic = append(cyclic, fmt.Sprintf("quest %s sits on a requirement cycle", q.ID))
		}
	}
	return cyclic
}
