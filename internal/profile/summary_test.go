package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/domain"
)

func TestFormatProfile_NewLearner(t *testing.T) {
	p, err := domain.NewUserProfile("newbie")
	require.NoError(t, err)

	assert.Equal(t, "No learning history found for this user. This is a new learner!", FormatProfile(p))
	assert.Equal(t, "No progress yet. Let's start learning!", FormatSummary(p))
}

func TestFormatProfile_ListsRecentModulesOnly(t *testing.T) {
	p, err := domain.NewUserProfile("dana")
	require.NoError(t, err)
	for _, title := range []string{"One", "Two", "Three", "Four"} {
		require.NoError(t, p.RecordCompletion("Python", title, 80))
	}

	out := FormatProfile(p)
	assert.Contains(t, out, "User Profile: dana")
	assert.Contains(t, out, "Modules Completed: 4")
	assert.NotContains(t, out, "- One:")
	assert.Contains(t, out, "- Two:")
	assert.Contains(t, out, "- Four:")
}

func TestFormatProfile_SkillsSorted(t *testing.T) {
	p, err := domain.NewUserProfile("erin")
	require.NoError(t, err)
	require.NoError(t, p.RecordCompletion("Rust", "Foundations of Rust", 75))
	require.NoError(t, p.RecordCompletion("Go", "Foundations of Go", 85))

	out := FormatProfile(p)
	assert.Less(t, strings.Index(out, "Skill: Go"), strings.Index(out, "Skill: Rust"))
}

func TestFormatSummary_BestSkill(t *testing.T) {
	p, err := domain.NewUserProfile("frank")
	require.NoError(t, err)
	require.NoError(t, p.RecordCompletion("Go", "Foundations of Go", 60))
	require.NoError(t, p.RecordCompletion("Python", "Foundations of Python", 95))

	out := FormatSummary(p)
	assert.Contains(t, out, "Best skill: Python (95.0%)")
	assert.Contains(t, out, "Total modules completed: 2")
}
