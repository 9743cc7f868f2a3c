// Package setup collects the target skill and starting level, then
// hands off to the chat screen.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

type phase int

const (
	phaseSkill phase = iota
	phaseLevel
)

// StartFunc builds the screen to show once the learner has chosen a
// skill and level. Returning an error keeps the setup screen up with
// the message displayed.
type StartFunc func(skill string, level domain.Level) (screen.Screen, error)

// SetupScreen asks for the skill and level.
type SetupScreen struct {
	start  StartFunc
	input  components.TextInput
	levels components.Menu
	phase  phase
	skill  string
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(start StartFunc) *SetupScreen {
	s := &SetupScreen{
		start: start,
		input: components.NewTextInput("e.g. Python, Machine Learning, Spanish...", 60),
	}
	s.levels = components.NewMenu([]components.MenuItem{
		{Label: "Beginner", Description: "basic concepts and definitions", Action: s.pick(domain.LevelBeginner)},
		{Label: "Intermediate", Description: "application and analysis", Action: s.pick(domain.LevelIntermediate)},
		{Label: "Expert", Description: "complex problem-solving and synthesis", Action: s.pick(domain.LevelExpert)},
	})
	return s
}

func (s *SetupScreen) pick(level domain.Level) func() tea.Cmd {
	return func() tea.Cmd {
		next, err := s.start(s.skill, level)
		if err != nil {
			s.errMsg = err.Error()
			return nil
		}
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseSkill {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose level"},
		{Key: "Enter", Description: "Start learning"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.phase {
	case phaseSkill:
		if isKey && kmsg.String() == "enter" {
			skill := strings.TrimSpace(s.input.Value())
			if skill == "" {
				s.errMsg = "Please enter a skill to learn."
				return s, nil
			}
			s.skill = skill
			s.errMsg = ""
			s.phase = phaseLevel
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseLevel:
		if isKey && kmsg.String() == "esc" {
			s.phase = phaseSkill
			s.errMsg = ""
			return s, s.input.Focus()
		}
		var cmd tea.Cmd
		s.levels, cmd = s.levels.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Plan your learning path"))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseSkill:
		b.WriteString(theme.Body.Render("What do you want to learn?"))
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
	case phaseLevel:
		b.WriteString(theme.Body.Render("Skill: " + s.skill))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Where are you starting from?"))
		b.WriteString("\n\n")
		b.WriteString(s.levels.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
