package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/awerner/promptquest/internal/game"
	"github.com/awerner/promptquest/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D7875F")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5F87")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func (m model) View() string {
	switch m.state.Phase {
	case game.PhaseIntro:
		return m.viewIntro()
	case game.PhaseTutorial:
		if !m.state.Tutorial.Completed {
			return m.viewTutorial()
		}
	}
	return m.viewMain()
}

func (m model) viewIntro() string {
	step := introSteps[m.introStep]

	var b strings.Builder
	b.WriteString(titleStyle.Render(step.title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(60).Render(step.body))
	b.WriteString("\n\n")

	if m.introStep == introNameStep {
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
		if m.nameError != "" {
			b.WriteString(warningStyle.Render(m.nameError))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	dots := make([]string, introStepCount)
	for i := range dots {
		if i == m.introStep {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	b.WriteString(dimStyle.Render(strings.Join(dots, " ")))
	b.WriteString("\n\n")
	if m.introStep < introStepCount-1 {
		b.WriteString(helpStyle.Render("enter: continue"))
	} else {
		b.WriteString(helpStyle.Render("enter: start your journey"))
	}

	return "\n" + cardStyle.Render(b.String()) + "\n"
}

func (m model) viewTutorial() string {
	step := tutorialSteps[min(m.state.Tutorial.CurrentStep, len(tutorialSteps)-1)]

	var b strings.Builder
	b.WriteString(titleStyle.Render(step.title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(60).Render(step.body))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("step %d of %d",
		m.state.Tutorial.CurrentStep+1, m.state.Tutorial.TotalSteps)))
	b.WriteString("\n\n")
	if m.state.Tutorial.CurrentStep < m.state.Tutorial.TotalSteps-1 {
		b.WriteString(helpStyle.Render("enter: next • esc: skip tutorial"))
	} else {
		b.WriteString(helpStyle.Render("enter: start playing"))
	}

	return "\n" + cardStyle.Render(b.String()) + "\n"
}

func (m model) viewMain() string {
	left := m.renderCharacterPanel() + "\n" + m.renderQuestPanel()
	right := m.renderWorkspace()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(left),
		"  ",
		right,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderNotes(),
		helpStyle.Render(m.helpLine()),
	)
}

func (m model) renderCharacterPanel() string {
	c := m.state.Character

	var b strings.Builder
	b.WriteString(titleStyle.Render("CHARACTER"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  (Lv %d)\n", c.Name, c.Level)
	fmt.Fprintf(&b, "XP %d/%d\n", c.XP, c.XPToNextLevel)
	fmt.Fprintf(&b, "Energy %d/%d  Tokens %d\n", c.Energy, c.MaxEnergy, c.Tokens)
	if c.UnassignedPoints > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("%d skill points to spend", c.UnassignedPoints)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("STATS"))
	b.WriteString("\n")
	for i, stat := range game.AllStats {
		fmt.Fprintf(&b, "%d. %-13s %d\n", i+1, stat, c.Stats.Value(stat))
	}

	if core, ok := m.state.ActiveLLMCore(); ok {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("CORE"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s (acc %.0f%%)\n", core.Name, core.BaseAccuracy*100)
	}

	return b.String()
}

func (m model) renderQuestPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("QUESTS"))
	b.WriteString("\n")

	for i, q := range m.state.Quests {
		line := q.Name
		switch {
		case q.Completed:
			line = "✓ " + line
		case q.ID == m.state.Character.ActiveQuest:
			line = "▶ " + line
		case !q.Available:
			line = "  " + line
		default:
			line = "  " + line
		}

		switch {
		case m.focus == focusQuests && i == m.questCursor:
			b.WriteString(selectedStyle.Render(line))
		case !q.Available && !q.Completed:
			b.WriteString(dimStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if q := m.questUnderCursor(); m.focus == focusQuests && q != nil {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(q.Objective))
		b.WriteString("\n")
		for _, hint := range q.Hints {
			b.WriteString(dimStyle.Render("· " + hint))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m model) renderWorkspace() string {
	cfg := m.state.PromptConfig

	var b strings.Builder
	b.WriteString(titleStyle.Render("PROMPT"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("temp %.1f • topK %d • topP %.1f • max %d tokens",
		cfg.Temperature, cfg.TopK, cfg.TopP, cfg.MaxTokens)))
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("OUTPUT"))
	b.WriteString("\n")
	if m.submitting {
		b.WriteString(dimStyle.Render("Processing prompt..."))
	} else if m.state.LastResponse == "" {
		b.WriteString(dimStyle.Render("No response yet. Submit a prompt with ctrl+s."))
	} else {
		b.WriteString(m.response.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m model) renderNotes() string {
	if len(m.notes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.notes))
	for _, n := range m.notes {
		switch n.Level {
		case game.NoteSuccess:
			lines = append(lines, successStyle.Render(n.Message))
		case game.NoteWarning:
			lines = append(lines, warningStyle.Render(n.Message))
		default:
			lines = append(lines, n.Message)
		}
	}
	return strings.Join(lines, "\n")
}

func (m model) helpLine() string {
	base := "tab: switch focus • ctrl+s: submit • ctrl+c: quit"
	if m.focus == focusQuests {
		base += " • enter: start quest • +/-: temperature • [/]: max tokens"
		if m.state.Character.UnassignedPoints > 0 {
			base += " • 1-6: spend point"
		}
	}
	if m.state.Character.Energy < session.SubmitEnergyCost {
		base += " • " + warningStyle.Render("out of energy")
	}
	return base
}
