package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/trace"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const (
	sidebarWidth  = 34
	tracePaneRows = 8
)

func (s *ChatScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width)

	mainWidth := width
	if !compact {
		mainWidth = width - sidebarWidth - 2
	}

	main := s.renderConversation(mainWidth, height)
	if compact {
		return main
	}

	sidebar := s.renderSidebar(sidebarWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, main, " ", sidebar)
}

// renderConversation shows the message history, the input line, and
// the trace pane when toggled on.
func (s *ChatScreen) renderConversation(width, height int) string {
	inputHeight := 2
	traceHeight := 0
	if s.showTrace {
		traceHeight = tracePaneRows + 1
	}
	historyHeight := height - inputHeight - traceHeight
	if historyHeight < 3 {
		historyHeight = 3
	}

	history := s.renderHistory(width, historyHeight)

	var b strings.Builder
	b.WriteString(history)
	b.WriteString("\n")

	if s.showTrace {
		b.WriteString(s.renderTrace(width))
		b.WriteString("\n")
	}

	if s.waiting {
		b.WriteString(theme.Hint.Render("Thinking..."))
	} else {
		b.WriteString("> " + s.input.View())
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// renderHistory wraps and trims the conversation to the last lines
// that fit.
func (s *ChatScreen) renderHistory(width, height int) string {
	var lines []string
	wrap := lipgloss.NewStyle().Width(width - 2)

	for _, m := range s.messages {
		prefix := "assistant"
		style := theme.AssistantMessage
		if m.FromUser {
			prefix = "you"
			style = theme.UserMessage
		}
		block := style.Render(prefix+":") + " " + m.Text
		lines = append(lines, strings.Split(wrap.Render(block), "\n")...)
		lines = append(lines, "")
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

// renderTrace shows the most recent tool and LLM activity.
func (s *ChatScreen) renderTrace(width int) string {
	entries := s.sess.Recorder.Last(tracePaneRows - 1)

	var b strings.Builder
	b.WriteString(theme.Hint.Render("Activity trace"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(theme.TraceLine.Render("  (no activity yet)"))
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s %s %s (%dms)",
			e.Time.Format("15:04:05"), kindMarker(e.Kind), e.Label, e.Duration.Milliseconds())
		if e.Err != "" {
			line += " error: " + e.Err
		}
		b.WriteString(theme.TraceLine.Render(truncateLine(line, width-2)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func kindMarker(k trace.Kind) string {
	if k == trace.KindTool {
		return "[tool]"
	}
	return "[llm]"
}

// renderSidebar shows the learning plan with per-module status.
func (s *ChatScreen) renderSidebar(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Learning Plan"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(s.sess.Header()))
	b.WriteString("\n\n")

	for _, m := range s.planModules() {
		b.WriteString(renderModule(m, width-4))
		b.WriteString("\n")
	}

	if s.pendingQuiz {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("A quiz is ready! Press Ctrl+Q to take it."))
	}

	return theme.Sidebar.Width(width - 2).Height(height - 2).Render(b.String())
}

func renderModule(m *domain.Module, width int) string {
	var marker string
	var style lipgloss.Style
	switch m.Status {
	case domain.StatusCompleted:
		marker = "✓"
		style = theme.ModuleCompleted
	case domain.StatusActive:
		marker = "▸"
		style = theme.ModuleActive
	default:
		marker = "·"
		style = theme.ModuleLocked
	}

	line := fmt.Sprintf("%s %s", marker, m.Title)
	out := style.Render(truncateLine(line, width))

	detail := fmt.Sprintf("   %dh", m.EstimatedHours)
	if m.Status == domain.StatusCompleted {
		detail += fmt.Sprintf(" · %.0f%%", m.MasteryScore)
	}
	out += "\n" + theme.Hint.Render(detail)
	return out
}

func truncateLine(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
