// Package session bundles the state of one learning session: the
// chosen skill and level, the generated plan, and the collaborators
// the screens drive.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/agent"
	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/plan"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/quizgen"
	"github.com/abhisek/pathwise/internal/search"
	"github.com/abhisek/pathwise/internal/tools"
	"github.com/abhisek/pathwise/internal/trace"
)

// Session is the state for one learning run. Plans are session-scoped;
// only the profile persists across runs.
type Session struct {
	ID     string
	UserID string
	Skill  string
	Level  domain.Level

	Plan     *domain.LearningPlan
	Agent    *agent.Agent
	QuizTool *tools.QuizTool
	Profiles profile.Store
	Recorder *trace.Recorder
}

// Deps are the long-lived collaborators a session is built from.
type Deps struct {
	Provider llm.Provider
	Profiles profile.Store
	Searcher search.Searcher
	Recorder *trace.Recorder
	UserID   string
}

// New builds a session for the given skill and level: the learning
// plan, the tool registry, and the conversational agent.
func New(deps Deps, skill string, level domain.Level) (*Session, error) {
	p, err := plan.Generate(skill, level)
	if err != nil {
		return nil, fmt.Errorf("build learning plan: %w", err)
	}

	quizTool := tools.NewQuizTool(quizgen.New(deps.Provider, quizgen.DefaultConfig()))
	registry := tools.NewRegistry(
		tools.NewProfileTool(deps.Profiles, deps.UserID),
		quizTool,
		tools.NewSearchTool(deps.Searcher),
	)

	return &Session{
		ID:       uuid.New().String(),
		UserID:   deps.UserID,
		Skill:    skill,
		Level:    level,
		Plan:     p,
		Agent:    agent.New(deps.Provider, registry, deps.Recorder, skill, level, agent.DefaultConfig()),
		QuizTool: quizTool,
		Profiles: deps.Profiles,
		Recorder: deps.Recorder,
	}, nil
}

// CompleteModule records a quiz score against the given module: the
// profile gains a completion and the next module unlocks.
func (s *Session) CompleteModule(ctx context.Context, moduleID int, score float64) error {
	m := s.Plan.FindModule(moduleID)
	if m == nil {
		return fmt.Errorf("no module with id %d", moduleID)
	}

	p, err := s.Profiles.Load(ctx, s.UserID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if err := p.RecordCompletion(s.Skill, m.Title, score); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	if err := s.Profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	plan.CompleteModule(s.Plan, moduleID, score)
	return nil
}

// Header is the session descriptor shown in the application header.
func (s *Session) Header() string {
	return fmt.Sprintf("%s · %s", s.Skill, s.Level)
}
