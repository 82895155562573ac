package journal

import (
	"github.com/awerner/promptquest/internal/game"
)

// Replay folds a journal through the game reducer starting from initial
// and returns the rebuilt state. Notes emitted along the way are
// discarded; they were already shown when the events were first applied.
func Replay(initial game.State, events []Event) (game.State, error) {
	state := initial
	for _, evt := range events {
		action, err := DecodeAction(evt.Type, evt.PayloadJSON)
		if err != nil {
			return state, err
		}
		state, _ = game.Apply(state, action)
	}
	return state, nil
}
