package domain

import (
	"errors"
	"testing"
)

func TestNewModule_Valid(t *testing.T) {
	m, err := NewModule(1, "Foundations of Go", StatusActive, []string{"syntax", "tooling", "types"}, 4, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != 1 || m.Status != StatusActive || m.EstimatedHours != 4 {
		t.Errorf("unexpected module: %+v", m)
	}
}

func TestNewModule_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		title     string
		status    ModuleStatus
		hours     int
		score     float64
		wantField string
	}{
		{"zero id", 0, "t", StatusLocked, 4, 0, "id"},
		{"negative id", -3, "t", StatusLocked, 4, 0, "id"},
		{"empty title", 1, "", StatusLocked, 4, 0, "title"},
		{"bad status", 1, "t", ModuleStatus("paused"), 4, 0, "status"},
		{"hours too low", 1, "t", StatusLocked, 0, 0, "estimated_hours"},
		{"hours too high", 1, "t", StatusLocked, 21, 0, "estimated_hours"},
		{"score too high", 1, "t", StatusLocked, 4, 150, "mastery_score"},
		{"score negative", 1, "t", StatusLocked, 4, -1, "mastery_score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModule(tt.id, tt.title, tt.status, nil, tt.hours, tt.score)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestNewQuizQuestion_CorrectIndexBounds(t *testing.T) {
	four := []string{"a", "b", "c", "d"}

	// Index 4 with 4 options is out of range: valid indices are 0-3.
	_, err := NewQuizQuestion("q", four, 4, "")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "correct_index" {
		t.Fatalf("expected correct_index ValidationError, got %v", err)
	}

	// Index 2 with only 2 options must also fail.
	_, err = NewQuizQuestion("q", []string{"a", "b"}, 2, "")
	if !errors.As(err, &verr) || verr.Field != "correct_index" {
		t.Fatalf("expected correct_index ValidationError, got %v", err)
	}

	q, err := NewQuizQuestion("q", four, 3, "because")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectIndex != 3 {
		t.Errorf("expected correct index 3, got %d", q.CorrectIndex)
	}
}

func TestNewQuizQuestion_OptionCount(t *testing.T) {
	if _, err := NewQuizQuestion("q", []string{"only"}, 0, ""); err == nil {
		t.Error("expected error for 1 option")
	}
	if _, err := NewQuizQuestion("q", []string{"a", "b", "c", "d", "e"}, 0, ""); err == nil {
		t.Error("expected error for 5 options")
	}
	if _, err := NewQuizQuestion("q", []string{"a", "b"}, 1, ""); err != nil {
		t.Errorf("2 options should be valid: %v", err)
	}
}

func TestNewQuiz_QuestionCount(t *testing.T) {
	q := func() *QuizQuestion {
		qq, err := NewQuizQuestion("q", []string{"a", "b"}, 0, "")
		if err != nil {
			t.Fatal(err)
		}
		return qq
	}

	if _, err := NewQuiz(1, "Go", LevelBeginner, []*QuizQuestion{q(), q()}); err == nil {
		t.Error("expected error for 2 questions")
	}
	if _, err := NewQuiz(1, "Go", LevelBeginner, []*QuizQuestion{q(), q(), q()}); err != nil {
		t.Errorf("3 questions should be valid: %v", err)
	}
	if _, err := NewQuiz(1, "Go", Level("nightmare"), []*QuizQuestion{q(), q(), q()}); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestRecordCompletion_Averages(t *testing.T) {
	p, err := NewUserProfile("learner-1")
	if err != nil {
		t.Fatal(err)
	}

	if err := p.RecordCompletion("Python", "Foundations of Python", 80); err != nil {
		t.Fatal(err)
	}
	if err := p.RecordCompletion("Python", "Core Concepts in Python", 90); err != nil {
		t.Fatal(err)
	}

	sp := p.Skills["Python"]
	if sp == nil {
		t.Fatal("expected Python skill entry")
	}
	if sp.AvgScore != 85 {
		t.Errorf("expected skill avg 85, got %g", sp.AvgScore)
	}
	if p.TotalModulesCompleted != 2 {
		t.Errorf("expected 2 completions, got %d", p.TotalModulesCompleted)
	}
	if p.OverallAvgScore != 85 {
		t.Errorf("expected overall avg 85, got %g", p.OverallAvgScore)
	}
}

func TestRecordCompletion_AcrossSkills(t *testing.T) {
	p, _ := NewUserProfile("learner-2")

	p.RecordCompletion("Go", "Foundations of Go", 100)
	p.RecordCompletion("SQL", "Foundations of SQL", 50)

	// Overall average spans every score across every skill.
	if p.OverallAvgScore != 75 {
		t.Errorf("expected overall avg 75, got %g", p.OverallAvgScore)
	}
	if p.TotalModulesCompleted != 2 {
		t.Errorf("expected 2 completions, got %d", p.TotalModulesCompleted)
	}

	name, avg, ok := p.BestSkill()
	if !ok || name != "Go" || avg != 100 {
		t.Errorf("expected best skill Go at 100, got %q at %g (ok=%t)", name, avg, ok)
	}
}

func TestRecordCompletion_Invalid(t *testing.T) {
	p, _ := NewUserProfile("learner-3")

	if err := p.RecordCompletion("", "m", 50); err == nil {
		t.Error("expected error for empty skill")
	}
	if err := p.RecordCompletion("Go", "m", 101); err == nil {
		t.Error("expected error for out-of-range score")
	}
	if p.TotalModulesCompleted != 0 {
		t.Errorf("failed updates must not mutate the profile, got %d completions", p.TotalModulesCompleted)
	}
}

func TestLearningPlan_ActiveModule(t *testing.T) {
	m1, _ := NewModule(1, "one", StatusCompleted, nil, 4, 80)
	m2, _ := NewModule(2, "two", StatusActive, nil, 6, 0)
	m3, _ := NewModule(3, "three", StatusLocked, nil, 8, 0)
	plan := &LearningPlan{Skill: "Go", Level: LevelBeginner, Modules: []*Module{m1, m2, m3}}

	if got := plan.ActiveModule(); got != m2 {
		t.Errorf("expected module 2 active, got %+v", got)
	}
	if got := plan.FindModule(3); got != m3 {
		t.Errorf("expected to find module 3, got %+v", got)
	}
	if got := plan.FindModule(99); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}
