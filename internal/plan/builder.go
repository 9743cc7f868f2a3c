// Package plan generates learning plans and drives module progression.
// Generation is deterministic: the same (skill, level) pair always yields
// the same plan.
package plan

import (
	"fmt"
	"time"

	"github.com/abhisek/pathwise/internal/domain"
)

// ModulesPerPlan is the fixed plan length.
const ModulesPerPlan = 3

// Hours ramp: base for module 1, +step per subsequent module.
const (
	baseHours = 4
	hoursStep = 2
)

const topicsPerModule = 3

// titleTemplates maps a level to its module title templates. %s is the
// target skill. Unknown levels fall back to the expert set.
var titleTemplates = map[domain.Level][]string{
	domain.LevelBeginner: {
		"Foundations of %s",
		"Core Concepts in %s",
		"Practical Applications of %s",
	},
	domain.LevelIntermediate: {
		"Advanced Concepts in %s",
		"Real-World %s Projects",
		"Mastering %s",
	},
	domain.LevelExpert: {
		"Expert-Level %s",
		"Cutting-Edge %s Research",
		"%s Innovation & Leadership",
	},
}

// Generate builds a three-module plan for the given skill and level. The
// first module starts active, the rest locked. Hours ramp 4/6/8 and each
// module carries three placeholder topics until real content is attached.
func Generate(skill string, level domain.Level) (*domain.LearningPlan, error) {
	if skill == "" {
		return nil, &domain.ValidationError{Field: "skill", Message: "must not be empty"}
	}

	templates, ok := titleTemplates[level]
	if !ok {
		templates = titleTemplates[domain.LevelExpert]
	}

	modules := make([]*domain.Module, 0, ModulesPerPlan)
	for i, tmpl := range templates {
		status := domain.StatusLocked
		if i == 0 {
			status = domain.StatusActive
		}

		topics := make([]string, topicsPerModule)
		for j := range topics {
			topics[j] = fmt.Sprintf("Topic %d", j+1)
		}

		m, err := domain.NewModule(i+1, fmt.Sprintf(tmpl, skill), status, topics, baseHours+i*hoursStep, 0)
		if err != nil {
			return nil, fmt.Errorf("build module %d: %w", i+1, err)
		}
		modules = append(modules, m)
	}

	return &domain.LearningPlan{
		Skill:   skill,
		Level:   level,
		Modules: modules,
		Created: time.Now(),
	}, nil
}

// CompleteModule marks the module with the given id completed, records
// its mastery score, and unlocks the immediate successor if one exists.
// Exactly one module transitions per call; there is no cascade. An
// unmatched id is a silent no-op.
func CompleteModule(p *domain.LearningPlan, moduleID int, score float64) {
	for i, m := range p.Modules {
		if m.ID != moduleID {
			continue
		}
		m.Status = domain.StatusCompleted
		m.MasteryScore = score

		if i+1 < len(p.Modules) {
			next := p.Modules[i+1]
			if next.Status == domain.StatusLocked {
				next.Status = domain.StatusActive
			}
		}
		return
	}
}
