// Package quiz scores completed quiz attempts and produces structured,
// human-readable feedback.
package quiz

import (
	"fmt"

	"github.com/abhisek/pathwise/internal/domain"
)

// Tier is the feedback bucket a score falls into. Thresholds are
// inclusive on the lower bound and evaluated in descending order.
type Tier string

const (
	TierMastered  Tier = "mastered"         // >= 90
	TierStrong    Tier = "strong"           // >= 80
	TierOnTrack   Tier = "on_track"         // >= 70
	TierFair      Tier = "fair"             // >= 60
	TierNeedsWork Tier = "needs_more_study" // < 60
)

// QuestionResult is the per-question review detail. It carries everything
// a caller needs to render a full review without re-deriving anything
// from the quiz.
type QuestionResult struct {
	Number        int    `json:"question_num"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`    // choice letter, e.g. "B"
	CorrectAnswer string `json:"correct_answer"` // choice letter
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// Result is the outcome of evaluating one quiz attempt. A mismatched
// answer count is a recoverable validation outcome, not an error: OK is
// false, Message explains, and Score is zero, so a conversational caller
// can always produce a sentence.
type Result struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message,omitempty"`
	Score    float64          `json:"score"`
	Correct  int              `json:"correct"`
	Total    int              `json:"total"`
	Tier     Tier             `json:"tier"`
	Feedback string           `json:"feedback"`
	Results  []QuestionResult `json:"results,omitempty"`
}

// Percentage renders the score rounded for display. The score itself is
// kept unrounded.
func (r *Result) Percentage() string {
	return fmt.Sprintf("%.1f%%", r.Score)
}

// Evaluate compares the submitted answer indices against the quiz and
// returns the scored result.
func Evaluate(q *domain.Quiz, userAnswers []int) *Result {
	if len(userAnswers) != len(q.Questions) {
		return &Result{
			OK:      false,
			Message: fmt.Sprintf("number of answers (%d) doesn't match number of questions (%d)", len(userAnswers), len(q.Questions)),
			Score:   0,
			Total:   len(q.Questions),
			Tier:    TierNeedsWork,
		}
	}

	results := make([]QuestionResult, 0, len(q.Questions))
	correct := 0

	for i, question := range q.Questions {
		answer := userAnswers[i]
		isCorrect := answer == question.CorrectIndex
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			Number:        i + 1,
			Question:      question.Question,
			UserAnswer:    choiceLetter(answer),
			CorrectAnswer: choiceLetter(question.CorrectIndex),
			IsCorrect:     isCorrect,
			Explanation:   question.Explanation,
		})
	}

	score := float64(correct) / float64(len(q.Questions)) * 100
	tier := tierFor(score)

	return &Result{
		OK:       true,
		Score:    score,
		Correct:  correct,
		Total:    len(q.Questions),
		Tier:     tier,
		Feedback: feedbackFor(tier),
		Results:  results,
	}
}

// tierFor buckets a score, highest matching threshold wins.
func tierFor(score float64) Tier {
	switch {
	case score >= 90:
		return TierMastered
	case score >= 80:
		return TierStrong
	case score >= 70:
		return TierOnTrack
	case score >= 60:
		return TierFair
	default:
		return TierNeedsWork
	}
}

func feedbackFor(tier Tier) string {
	switch tier {
	case TierMastered:
		return "Excellent! You've mastered this topic."
	case TierStrong:
		return "Great work! You have a strong understanding."
	case TierOnTrack:
		return "Good job! You're on the right track."
	case TierFair:
		return "Fair performance. Review the material and try again."
	default:
		return "More study needed. Don't worry, practice makes perfect!"
	}
}

// choiceLetter maps an option index to its display letter (A-D).
// Out-of-range submissions still render as a letter so reviews stay
// printable.
func choiceLetter(index int) string {
	if index < 0 || index > 25 {
		return "?"
	}
	return string(rune('A' + index))
}
