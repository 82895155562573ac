// Package tui renders the game in the terminal.
//
// The model never mutates game state directly: every change goes through
// the session as a dispatched action or a prompt submission, and the
// model re-reads a state clone afterwards. Notes emitted by the session
// arrive over a channel and surface in the status line.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/awerner/promptquest/internal/game"
	"github.com/awerner/promptquest/internal/session"
	"github.com/awerner/promptquest/internal/sim"
)

type focusArea int

const (
	focusPrompt focusArea = iota
	focusQuests
)

const (
	maxVisibleNotes  = 3
	temperatureStep  = 0.1
	maxTokensStep    = 10
	noteBufferSize   = 16
	introStepCount   = 4
	introNameStep    = 1
	minPanelWidth    = 30
	responseMinLines = 6
)

type introContent struct {
	title string
	body  string
}

var introSteps = [introStepCount]introContent{
	{
		title: "Welcome to Prompt Engineering: The RPG",
		body: "In a world where AI language models shape the digital landscape, the art of " +
			"prompt engineering has become a crucial skill. As a budding prompt engineer, " +
			"you'll learn to master the techniques needed to command these powerful models.",
	},
	{
		title: "Create Your Character",
		body: "Before you begin your journey, you'll need to establish your identity. " +
			"What shall we call you, aspiring prompt engineer?",
	},
	{
		title: "Your Mission Begins",
		body: "As a novice prompt engineer, you'll start with basic tasks and gradually take on " +
			"more complex challenges. Complete quests to earn XP, tokens, and unlock new " +
			"techniques and LLM cores.",
	},
	{
		title: "The Adventure Awaits",
		body: "Your journey to becoming a master prompt engineer begins now. Good luck, and " +
			"remember - the power of language models is in your hands!",
	},
}

var tutorialSteps = []introContent{
	{
		title: "Welcome to the Prompt Engineering Lab",
		body:  "This is your training ground for mastering prompt engineering. Let me guide you through the basics.",
	},
	{
		title: "Understanding the Interface",
		body: "Your character stats influence your success with different types of prompts. " +
			"The prompt interface lets you craft instructions for the LLM. The output terminal shows responses.",
	},
	{
		title: "Completing Quests",
		body: "Select a quest from the quest panel to get started. Each quest has objectives, " +
			"hints, and rewards. Use the right techniques to succeed!",
	},
}

type model struct {
	sess  *session.Session
	state game.State

	introStep int
	nameInput textinput.Model
	nameError string

	prompt   textarea.Model
	response viewport.Model

	focus       focusArea
	questCursor int

	notes      []game.Note
	noteCh     chan game.Note
	submitting bool

	width  int
	height int
}

type noteMsg struct {
	note game.Note
}

type submitDoneMsg struct {
	result sim.Result
	err    error
}

// NewModel builds the root model over a session.
func NewModel(sess *session.Session) model {
	ni := textinput.New()
	ni.Placeholder = "Enter your name"
	ni.CharLimit = 40
	ni.Width = 30
	ni.Focus()

	ta := textarea.New()
	ta.Placeholder = "Craft your prompt..."
	ta.SetHeight(5)
	ta.Focus()

	vp := viewport.New(60, responseMinLines)

	m := model{
		sess:      sess,
		state:     sess.State(),
		nameInput: ni,
		prompt:    ta,
		response:  vp,
		noteCh:    make(chan game.Note, noteBufferSize),
	}
	sess.Subscribe(func(n game.Note) {
		select {
		case m.noteCh <- n:
		default:
		}
	})
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForNote(m.noteCh))
}

func waitForNote(ch chan game.Note) tea.Cmd {
	return func() tea.Msg {
		return noteMsg{note: <-ch}
	}
}

func (m model) submitPrompt() tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		result, err := sess.Submit(context.Background())
		return submitDoneMsg{result: result, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case noteMsg:
		m.notes = append(m.notes, msg.note)
		if len(m.notes) > maxVisibleNotes {
			m.notes = m.notes[len(m.notes)-maxVisibleNotes:]
		}
		m.refresh()
		return m, waitForNote(m.noteCh)

	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.pushNote(game.Note{Level: game.NoteWarning, Message: refusalMessage(msg.err)})
		}
		m.refresh()
		m.response.SetContent(m.state.LastResponse)
		m.response.GotoTop()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state.Phase {
	case game.PhaseIntro:
		return m.handleIntroKey(msg)
	case game.PhaseTutorial:
		if !m.state.Tutorial.Completed {
			return m.handleTutorialKey(msg)
		}
	}
	return m.handleMainKey(msg)
}

func (m model) handleIntroKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if m.introStep == introNameStep {
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				m.nameError = "Please enter a name"
				return m, nil
			}
			m.nameError = ""
			m.sess.Dispatch(game.SetCharacterName{Name: name})
		}
		if m.introStep < introStepCount-1 {
			m.introStep++
			return m, nil
		}
		m.sess.Dispatch(game.SetGamePhase{Phase: game.PhaseTutorial})
		m.refresh()
		return m, nil
	}

	if m.introStep == introNameStep {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleTutorialKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.state.Tutorial.CurrentStep < m.state.Tutorial.TotalSteps-1 {
			m.sess.Dispatch(game.AdvanceTutorial{})
		} else {
			m.sess.Dispatch(game.CompleteTutorial{})
		}
		m.refresh()
		return m, nil
	case tea.KeyEsc:
		m.sess.Dispatch(game.CompleteTutorial{})
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		if m.focus == focusPrompt {
			m.focus = focusQuests
			m.prompt.Blur()
		} else {
			m.focus = focusPrompt
			m.prompt.Focus()
		}
		return m, nil
	case tea.KeyCtrlS:
		return m.startSubmission()
	}

	if m.focus == focusQuests {
		return m.handleQuestKey(msg)
	}

	// Stat points and config tweaks only while the quest panel has focus,
	// so typing a prompt never triggers them.
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m model) handleQuestKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.questCursor > 0 {
			m.questCursor--
		}
	case "down", "j":
		if m.questCursor < len(m.state.Quests)-1 {
			m.questCursor++
		}
	case "enter":
		if q := m.questUnderCursor(); q != nil && q.Available && !q.Completed {
			m.sess.Dispatch(game.StartQuest{QuestID: q.ID})
			m.refresh()
			if q.PromptTemplate != "" && strings.TrimSpace(m.prompt.Value()) == "" {
				m.prompt.SetValue(q.PromptTemplate)
			}
		}
	case "+", "=":
		m.adjustTemperature(temperatureStep)
	case "-", "_":
		m.adjustTemperature(-temperatureStep)
	case "]":
		m.adjustMaxTokens(maxTokensStep)
	case "[":
		m.adjustMaxTokens(-maxTokensStep)
	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		if idx < len(game.AllStats) {
			m.sess.Dispatch(game.IncreaseStat{Stat: game.AllStats[idx]})
			m.refresh()
		}
	}
	return m, nil
}

func (m model) startSubmission() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.sess.Dispatch(game.SetCurrentPrompt{Text: m.prompt.Value()})
	m.submitting = true
	m.refresh()
	return m, m.submitPrompt()
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.state.Phase == game.PhaseIntro && m.introStep == introNameStep:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case m.focus == focusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	default:
		m.response, cmd = m.response.Update(msg)
	}
	return m, cmd
}

func (m *model) adjustTemperature(delta float64) {
	temp := m.state.PromptConfig.Temperature + delta
	if temp < 0 {
		temp = 0
	}
	if temp > 1 {
		temp = 1
	}
	m.sess.Dispatch(game.UpdatePromptConfig{Patch: game.PromptConfigPatch{Temperature: &temp}})
	m.refresh()
}

func (m *model) adjustMaxTokens(delta int) {
	tokens := m.state.PromptConfig.MaxTokens + delta
	if tokens < maxTokensStep {
		tokens = maxTokensStep
	}
	m.sess.Dispatch(game.UpdatePromptConfig{Patch: game.PromptConfigPatch{MaxTokens: &tokens}})
	m.refresh()
}

func (m *model) refresh() {
	m.state = m.sess.State()
}

func (m *model) pushNote(n game.Note) {
	m.notes = append(m.notes, n)
	if len(m.notes) > maxVisibleNotes {
		m.notes = m.notes[len(m.notes)-maxVisibleNotes:]
	}
}

func (m *model) resize() {
	panelWidth := m.width / 3
	if panelWidth < minPanelWidth {
		panelWidth = minPanelWidth
	}
	contentWidth := m.width - panelWidth - 4
	if contentWidth < minPanelWidth {
		contentWidth = minPanelWidth
	}
	m.prompt.SetWidth(contentWidth)
	m.response.Width = contentWidth
	m.response.Height = max(m.height-m.prompt.Height()-10, responseMinLines)
}

func (m model) questUnderCursor() *game.Quest {
	if m.questCursor < 0 || m.questCursor >= len(m.state.Quests) {
		return nil
	}
	return &m.state.Quests[m.questCursor]
}

func refusalMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Run starts the program and blocks until it exits.
func Run(ctx context.Context, sess *session.Session) error {
	p := tea.NewProgram(NewModel(sess), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
