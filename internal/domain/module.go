// Package domain defines the entities of the learning-path assistant and
// their construction-time validation rules. Entities are pure value
// holders; all mutation beyond construction happens through the explicit
// operations defined on them (plan progression, profile aggregation).
package domain

import "time"

// ModuleStatus is the lifecycle state of a learning module.
type ModuleStatus string

const (
	StatusLocked    ModuleStatus = "locked"
	StatusActive    ModuleStatus = "active"
	StatusCompleted ModuleStatus = "completed"
)

// Level is a learner proficiency level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelExpert       Level = "expert"
)

// Module bounds, matching the plan builder's templates.
const (
	MinEstimatedHours = 1
	MaxEstimatedHours = 20
)

// Module is one unit of a learning plan with a locked/active/completed
// lifecycle. Modules are created by the plan builder and mutated only by
// the unlock transition; a completed module is terminal.
type Module struct {
	ID             int          `json:"id"`
	Title          string       `json:"title"`
	Status         ModuleStatus `json:"status"`
	Topics         []string     `json:"topics"`
	EstimatedHours int          `json:"estimated_hours"`
	MasteryScore   float64      `json:"mastery_score"`
}

// NewModule validates the fields and returns a Module.
func NewModule(id int, title string, status ModuleStatus, topics []string, estimatedHours int, masteryScore float64) (*Module, error) {
	if id <= 0 {
		return nil, invalidf("id", "must be a positive integer, got %d", id)
	}
	if title == "" {
		return nil, invalidf("title", "must not be empty")
	}
	if !status.valid() {
		return nil, invalidf("status", "must be locked, active, or completed, got %q", status)
	}
	if estimatedHours < MinEstimatedHours || estimatedHours > MaxEstimatedHours {
		return nil, invalidf("estimated_hours", "must be between %d and %d, got %d", MinEstimatedHours, MaxEstimatedHours, estimatedHours)
	}
	if masteryScore < 0 || masteryScore > 100 {
		return nil, invalidf("mastery_score", "must be between 0 and 100, got %g", masteryScore)
	}
	return &Module{
		ID:             id,
		Title:          title,
		Status:         status,
		Topics:         topics,
		EstimatedHours: estimatedHours,
		MasteryScore:   masteryScore,
	}, nil
}

func (s ModuleStatus) valid() bool {
	switch s {
	case StatusLocked, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// ParseLevel normalizes a level string. Unknown values are reported so
// callers can decide on a fallback; the plan builder falls back to the
// expert templates.
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelExpert:
		return Level(s), true
	}
	return Level(s), false
}

// LearningPlan is the ordered module sequence for one skill. The order of
// Modules is the intended study order. A plan owns its modules exclusively
// and is session-scoped: it is not persisted, only the profile is.
type LearningPlan struct {
	Skill   string    `json:"skill"`
	Level   Level     `json:"level"`
	Modules []*Module `json:"modules"`
	Created time.Time `json:"created"`
}

// ActiveModule returns the currently active module, or nil if none is
// active (all completed, or progression was never started).
func (p *LearningPlan) ActiveModule() *Module {
	for _, m := range p.Modules {
		if m.Status == StatusActive {
			return m
		}
	}
	return nil
}

// FindModule returns the module with the given id, or nil.
func (p *LearningPlan) FindModule(id int) *Module {
	for _, m := range p.Modules {
		if m.ID == id {
			return m
		}
	}
	return nil
}
