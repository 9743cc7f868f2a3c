package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/quiz"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.phase == phaseResult {
		return s.renderResult(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.current+1, len(s.quiz.Questions)),
		float64(s.current)/float64(len(s.quiz.Questions)),
		false,
		min(width-8, 60),
	)
	b.WriteString(progress.View())
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	if s.phase == phaseReveal {
		b.WriteString("\n")
		if s.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) renderResult(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz Complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score: %s (%d/%d correct)\n", r.Percentage(), r.Correct, r.Total)
	fmt.Fprintf(&b, "Tier: %s\n\n", tierLabel(r.Tier))
	b.WriteString(theme.Body.Render(r.Feedback))
	b.WriteString("\n\n")

	for _, qr := range r.Results {
		marker := theme.Correct.Render("✓")
		if !qr.IsCorrect {
			marker = theme.Incorrect.Render("✗")
		}
		fmt.Fprintf(&b, "%s Q%d: you answered %s, correct was %s\n", marker, qr.Number, qr.UserAnswer, qr.CorrectAnswer)
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func tierLabel(t quiz.Tier) string {
	switch t {
	case quiz.TierMastered:
		return "Mastered"
	case quiz.TierStrong:
		return "Strong"
	case quiz.TierOnTrack:
		return "On Track"
	case quiz.TierFair:
		return "Fair"
	default:
		return "Needs More Study"
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
