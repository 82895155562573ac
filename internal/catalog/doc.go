// Package catalog loads the static game content: LLM cores, prompting
// techniques, and quests.
//
// The content ships as YAML embedded in the binary. Load decodes and
// validates it exactly once and returns fresh copies so callers cannot
// mutate cached package state. NewState assembles the initial game state
// for a fresh playthrough from the catalog.
package catalog
