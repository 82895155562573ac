package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/awerner/promptquest/internal/errors"
	"github.com/awerner/promptquest/internal/game"
	"github.com/awerner/promptquest/internal/journal"
	"github.com/awerner/promptquest/internal/random"
	"github.com/awerner/promptquest/internal/sim"
)

const (
	// SubmitEnergyCost is the energy charged per prompt submission.
	SubmitEnergyCost = 10
	// DefaultSubmitDelay simulates the model thinking before it answers.
	DefaultSubmitDelay = 1500 * time.Millisecond
)

// Submission refusals. Matched by code, so errors.Is works across wrapping.
var (
	// ErrEmptyPrompt rejects a submission with no prompt text.
	ErrEmptyPrompt = apperrors.New(apperrors.CodeSubmissionEmptyPrompt, "your prompt is empty")
	// ErrInsufficientEnergy rejects a submission the character cannot pay for.
	ErrInsufficientEnergy = apperrors.New(apperrors.CodeSubmissionNoEnergy, "not enough energy to submit prompt")
	// ErrSubmissionInFlight rejects a submission while another is running.
	ErrSubmissionInFlight = apperrors.New(apperrors.CodeSubmissionInFlight, "a submission is already in flight")
)

// Session owns one playthrough's state and its journal.
type Session struct {
	mu         sync.Mutex
	state      game.State
	store      *journal.Store
	subs       []func(game.Note)
	submitting bool

	delay time.Duration
	seeds func() int64
}

// Option configures a session.
type Option func(*Session)

// WithDelay overrides the simulated response delay. Tests pass zero.
func WithDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithSeedSource overrides how submission seeds are drawn. A deterministic
// source makes whole playthroughs reproducible.
func WithSeedSource(seeds func() int64) Option {
	return func(s *Session) { s.seeds = seeds }
}

// New creates a session over the given initial state.
func New(initial game.State, opts ...Option) *Session {
	s := &Session{
		state: initial.Clone(),
		store: journal.NewStore(),
		delay: DefaultSubmitDelay,
		seeds: random.SeedSource(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a clone of the current state.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Journal returns the session's event journal.
func (s *Session) Journal() *journal.Store {
	return s.store
}

// Subscribe registers a listener for notes produced by applied actions.
// Listeners run outside the session lock, in dispatch order.
func (s *Session) Subscribe(fn func(game.Note)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Dispatch applies one action, journals it, and returns the notes it
// produced.
func (s *Session) Dispatch(a game.Action) []game.Note {
	return s.dispatchWith(uuid.NewString(), a)
}

func (s *Session) dispatchWith(requestID string, a game.Action) []game.Note {
	s.mu.Lock()
	next, notes := game.Apply(s.state, a)
	s.state = next
	if typ, payload, err := journal.EncodeAction(a); err == nil {
		s.store.Append(journal.Event{
			Type:        typ,
			RequestID:   requestID,
			PayloadJSON: payload,
		})
	}
	subs := append(([]func(game.Note))(nil), s.subs...)
	s.mu.Unlock()

	for _, note := range notes {
		for _, fn := range subs {
			fn(note)
		}
	}
	return notes
}

// Submit runs one full prompt turn. It refuses upfront when the prompt is
// empty, the character cannot pay the energy cost, or another submission
// is in flight; refusals leave the state untouched. The context cancels
// the simulated delay.
func (s *Session) Submit(ctx context.Context) (sim.Result, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return sim.Result{}, ErrSubmissionInFlight
	}
	if strings.TrimSpace(s.state.CurrentPrompt) == "" {
		s.mu.Unlock()
		return sim.Result{}, ErrEmptyPrompt
	}
	if s.state.Character.Energy < SubmitEnergyCost {
		s.mu.Unlock()
		return sim.Result{}, ErrInsufficientEnergy
	}
	s.submitting = true
	snapshot := s.state.Clone()
	delay := s.delay
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return sim.Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	req := sim.Request{
		Prompt: snapshot.CurrentPrompt,
		Config: snapshot.PromptConfig,
		Stats:  snapshot.Character.Stats,
		Seed:   s.seeds(),
	}
	if core, ok := snapshot.ActiveLLMCore(); ok {
		req.Core = &core
	}
	var activeQuestID string
	if quest, ok := snapshot.ActiveQuest(); ok {
		req.Quest = &quest
		activeQuestID = quest.ID
	}

	result := sim.Simulate(req)

	requestID := uuid.NewString()
	if result.Success && result.QuestMet && activeQuestID != "" {
		s.dispatchWith(requestID, game.CompleteQuest{QuestID: activeQuestID})
	}
	s.dispatchWith(requestID, game.SpendEnergy{Amount: SubmitEnergyCost})
	s.dispatchWith(requestID, game.SetResponse{Text: result.Response})

	s.notify(submissionNote(result))
	return result, nil
}

func submissionNote(result sim.Result) game.Note {
	if result.Success {
		return game.Note{Level: game.NoteSuccess, Message: "Prompt successful!"}
	}
	return game.Note{Level: game.NoteWarning, Message: "Prompt didn't achieve the desired outcome."}
}

func (s *Session) notify(note game.Note) {
	s.mu.Lock()
	subs := append(([]func(game.Note))(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(note)
	}
}
