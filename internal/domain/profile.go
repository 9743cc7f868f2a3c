package domain

import "time"

// ModuleRecord is one completed module inside a skill's history.
type ModuleRecord struct {
	Title       string    `json:"title"`
	Score       float64   `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// SkillProgress is the fixed-shape record kept per skill: the ordered
// completion history plus the running average over it.
type SkillProgress struct {
	Modules  []ModuleRecord `json:"modules"`
	AvgScore float64        `json:"avg_score"`
}

// UserProfile is the durable per-user aggregate of all skill progress.
// It is created empty on first reference to a user id and mutated only
// through RecordCompletion.
type UserProfile struct {
	UserID                string                    `json:"user_id"`
	Skills                map[string]*SkillProgress `json:"skills"`
	TotalModulesCompleted int                       `json:"total_modules_completed"`
	OverallAvgScore       float64                   `json:"overall_avg_score"`
	LastUpdated           time.Time                 `json:"last_updated"`
}

// NewUserProfile returns an empty profile for the given user id.
func NewUserProfile(userID string) (*UserProfile, error) {
	if userID == "" {
		return nil, invalidf("user_id", "must not be empty")
	}
	return &UserProfile{
		UserID:      userID,
		Skills:      make(map[string]*SkillProgress),
		LastUpdated: time.Now(),
	}, nil
}

// RecordCompletion appends a completion record under the named skill,
// creating the skill entry if absent, and recomputes both the skill
// average and the overall average from the full history. Full recompute,
// not a running average: correctness then holds regardless of call order
// or accumulated floating-point drift. The counters reflect the state
// after the new record is appended.
func (p *UserProfile) RecordCompletion(skill, moduleTitle string, score float64) error {
	if skill == "" {
		return invalidf("skill", "must not be empty")
	}
	if moduleTitle == "" {
		return invalidf("module_title", "must not be empty")
	}
	if score < 0 || score > 100 {
		return invalidf("score", "must be between 0 and 100, got %g", score)
	}

	if p.Skills == nil {
		p.Skills = make(map[string]*SkillProgress)
	}
	sp, ok := p.Skills[skill]
	if !ok {
		sp = &SkillProgress{}
		p.Skills[skill] = sp
	}

	sp.Modules = append(sp.Modules, ModuleRecord{
		Title:       moduleTitle,
		Score:       score,
		CompletedAt: time.Now(),
	})

	var sum float64
	for _, m := range sp.Modules {
		sum += m.Score
	}
	sp.AvgScore = sum / float64(len(sp.Modules))

	p.TotalModulesCompleted++

	var allSum float64
	var allCount int
	for _, s := range p.Skills {
		for _, m := range s.Modules {
			allSum += m.Score
			allCount++
		}
	}
	if allCount > 0 {
		p.OverallAvgScore = allSum / float64(allCount)
	}

	p.LastUpdated = time.Now()
	return nil
}

// BestSkill returns the skill with the highest average score and that
// average. ok is false when the profile has no skills yet.
func (p *UserProfile) BestSkill() (name string, avg float64, ok bool) {
	for skill, sp := range p.Skills {
		if !ok || sp.AvgScore > avg || (sp.AvgScore == avg && skill < name) {
			name, avg, ok = skill, sp.AvgScore, true
		}
	}
	return name, avg, ok
}
