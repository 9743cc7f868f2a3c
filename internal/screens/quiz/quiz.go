// Package quizscreen runs a generated quiz question by question and
// reports the scored result back to the pushing screen.
package quizscreen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/quiz"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
)

// CompletedMsg is broadcast after the learner finishes a quiz and
// dismisses the result view.
type CompletedMsg struct {
	ModuleID int
	Result   *quiz.Result
}

type phase int

const (
	phaseQuestion phase = iota
	phaseReveal
	phaseResult
)

// QuizScreen walks through the questions of one quiz.
type QuizScreen struct {
	quiz    *domain.Quiz
	current int
	answers []int
	choice  components.MultiChoice
	result  *quiz.Result
	phase   phase
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given quiz.
func New(q *domain.Quiz) *QuizScreen {
	s := &QuizScreen{
		quiz:    q,
		answers: make([]int, 0, len(q.Questions)),
	}
	s.choice = newChoice(q.Questions[0])
	return s
}

func newChoice(q *domain.QuizQuestion) components.MultiChoice {
	return components.NewMultiChoice(q.Question, q.Options, q.CorrectIndex, q.Explanation)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz: " + s.quiz.Topic
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓/a-d", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	case phaseReveal:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to chat"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseQuestion:
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			s.answers = append(s.answers, s.choice.ChosenIndex)
			s.phase = phaseReveal
		}
		return s, nil

	case phaseReveal:
		return s.advance()

	case phaseResult:
		if kmsg.String() == "enter" {
			return s.finish()
		}
		return s, nil
	}

	return s, nil
}

// advance moves to the next question, or scores the quiz when all
// questions are answered.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.current++
	if s.current < len(s.quiz.Questions) {
		s.choice = newChoice(s.quiz.Questions[s.current])
		s.phase = phaseQuestion
		return s, nil
	}

	s.result = quiz.Evaluate(s.quiz, s.answers)
	s.phase = phaseResult
	return s, nil
}

// finish pops back and reports the result.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	moduleID := s.quiz.ModuleID
	result := s.result
	return s, tea.Batch(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return CompletedMsg{ModuleID: moduleID, Result: result} },
	)
}
