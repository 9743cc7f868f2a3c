package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/pathwise/internal/domain"
)

// recentModules caps how many completions are listed per skill in the
// full profile rendering.
const recentModules = 3

// FormatProfile renders the full profile as text for the conversational
// layer. Skills are sorted by name so output is stable.
func FormatProfile(p *domain.UserProfile) string {
	if len(p.Skills) == 0 {
		return "No learning history found for this user. This is a new learner!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User Profile: %s\n", p.UserID)
	fmt.Fprintf(&b, "Total Modules Completed: %d\n", p.TotalModulesCompleted)
	fmt.Fprintf(&b, "Overall Average Score: %.1f%%\n", p.OverallAvgScore)

	for _, skill := range sortedSkills(p) {
		sp := p.Skills[skill]
		fmt.Fprintf(&b, "\nSkill: %s\n", skill)
		fmt.Fprintf(&b, "  Average Score: %.1f%%\n", sp.AvgScore)
		fmt.Fprintf(&b, "  Modules Completed: %d\n", len(sp.Modules))

		start := len(sp.Modules) - recentModules
		if start < 0 {
			start = 0
		}
		for _, m := range sp.Modules[start:] {
			fmt.Fprintf(&b, "    - %s: %.1f%%\n", m.Title, m.Score)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSummary renders a brief progress summary.
func FormatSummary(p *domain.UserProfile) string {
	if len(p.Skills) == 0 {
		return "No progress yet. Let's start learning!"
	}

	best, bestAvg, _ := p.BestSkill()

	var b strings.Builder
	b.WriteString("Progress Summary:\n")
	fmt.Fprintf(&b, "  Skills in progress: %d\n", len(p.Skills))
	fmt.Fprintf(&b, "  Total modules completed: %d\n", p.TotalModulesCompleted)
	fmt.Fprintf(&b, "  Overall average: %.1f%%\n", p.OverallAvgScore)
	fmt.Fprintf(&b, "  Best skill: %s (%.1f%%)", best, bestAvg)
	return b.String()
}

func sortedSkills(p *domain.UserProfile) []string {
	skills := make([]string, 0, len(p.Skills))
	for s := range p.Skills {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
