// Package game provides the game-state aggregate and its transition function.
//
// The package is organized around a single authoritative State value and a
// closed set of Action kinds folded through Apply. Apply is pure: it never
// mutates its input, performs no I/O, and draws no randomness. Rejected
// actions (insufficient energy, tokens, or stat points) return the input
// state unchanged together with a warning Note; there is no error path out
// of a transition.
//
// # Character Resources
//
// Low-level resource mutations (energy, tokens, stat points, experience)
// live in pure Apply* helpers returning the updated character plus
// before/after values and a sentinel error on refusal. Apply converts those
// refusals into warning notes.
//
// # Quest Lifecycle
//
// Quests are seeded from the content catalog with their availability and
// completion flags. Completing a quest is one atomic transition: the quest
// is marked completed, its rewards are folded back through Apply in order
// (so an XP reward can trigger a level-up and the consequent availability
// re-scan), and quests gated on the completed quest become available.
// Completion is terminal; re-completing is a no-op.
package game
