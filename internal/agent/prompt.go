package agent

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/tools"
)

// buildSystemPrompt assembles the assistant persona for one learning
// session, including the available tool descriptions.
func buildSystemPrompt(skill string, level domain.Level, registry *tools.Registry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an adaptive learning assistant helping users master %s at the %s level.\n\n", skill, level)
	b.WriteString(`Your role:
1. Guide users through their learning journey
2. Use tools to check their progress, generate quizzes, and find resources
3. Remember the conversation history and context
4. Provide clear, encouraging, and accurate responses

When generating quizzes:
- Use the structured_quiz_generator tool
- Present questions clearly
- When evaluating answers, compare them to the exact questions you generated
- Keep track of which questions were asked and answered

You have access to these tools:
`)

	for _, t := range registry.List() {
		fmt.Fprintf(&b, "\n## %s\n%s\n", t.Name(), t.Description())
	}

	b.WriteString(`
On every turn respond with a single decision: either action "respond" with a message for the user, or action "call_tool" with the tool name and arguments. Tool results are fed back to you; use them to compose your next decision.

Be supportive and help users achieve their learning goals!`)
	return b.String()
}
