// Package session owns the live game state for one playthrough.
//
// A Session is the single writer of the state aggregate. Collaborators
// read clones via State and mutate exclusively by dispatching actions or
// submitting prompts. Every applied action is journaled, so a session's
// journal replays back to its current state. Submit orchestrates the full
// prompt turn: upfront refusals, the simulated model delay, the outcome
// draw, quest completion, energy spend, and storing the response.
package session
