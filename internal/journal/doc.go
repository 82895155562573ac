// Package journal records every applied game action as an immutable event.
//
// Events are append-only and carry a monotonically increasing sequence
// number assigned by the store. Each event names its type, the request it
// belongs to, and a JSON payload that round-trips to the game action it
// was encoded from. Replay folds a journal back through the game reducer
// to rebuild state, so a journal plus the initial state is a complete
// save file.
package journal
