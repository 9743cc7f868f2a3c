// Package chat is the main conversation screen: the agent exchange on
// the left, the learning plan on the right, and an optional activity
// trace pane.
package chat

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/agent"
	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	quizscreen "github.com/abhisek/pathwise/internal/screens/quiz"
	"github.com/abhisek/pathwise/internal/session"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
)

const greeting = "Hi! I'm your learning assistant. Ask me anything about your plan, request a quiz when you're ready, or ask for resources to dig deeper."

// ChatScreen drives the conversation with the agent.
type ChatScreen struct {
	sess      *session.Session
	input     components.TextInput
	messages  []chatMessage
	waiting   bool
	showTrace bool

	// pendingQuiz is set when the agent generated a quiz that has not
	// been taken yet.
	pendingQuiz bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen for an initialized session.
func New(sess *session.Session) *ChatScreen {
	return &ChatScreen{
		sess:     sess,
		input:    components.NewTextInput("Ask your learning assistant...", 500),
		messages: []chatMessage{{Text: greeting}},
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Learning Session"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+T", Description: "Trace"},
	}
	if s.pendingQuiz {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+Q", Description: "Take quiz"})
	}
	return hints
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return s.handleReply(msg)

	case quizscreen.CompletedMsg:
		return s.handleQuizCompleted(msg)

	case moduleCompletedMsg:
		return s.handleModuleCompleted(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		s.showTrace = !s.showTrace
		return s, nil

	case "ctrl+q":
		if s.pendingQuiz && s.sess.QuizTool.LastQuiz != nil {
			s.pendingQuiz = false
			q := s.sess.QuizTool.LastQuiz
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(q)}
			}
		}
		return s, nil

	case "enter":
		if s.waiting {
			return s, nil
		}
		text := s.input.Value()
		if text == "" {
			return s, nil
		}
		s.input.Clear()
		s.messages = append(s.messages, chatMessage{FromUser: true, Text: text})
		s.waiting = true
		return s, s.send(text)
	}

	if s.waiting {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send runs one agent turn off the UI loop.
func (s *ChatScreen) send(text string) tea.Cmd {
	a := s.sess.Agent
	return func() tea.Msg {
		reply, err := a.Chat(context.Background(), text)
		return replyMsg{Reply: reply, Err: err}
	}
}

func (s *ChatScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false

	if msg.Err != nil {
		s.messages = append(s.messages, chatMessage{Text: agent.ErrorReply(msg.Err)})
		return s, nil
	}

	s.messages = append(s.messages, chatMessage{Text: msg.Reply})

	// A freshly generated quiz becomes takeable.
	if s.sess.QuizTool.LastQuiz != nil && !s.pendingQuiz {
		s.pendingQuiz = true
	}
	return s, nil
}

// handleQuizCompleted applies the quiz outcome to the plan and profile.
func (s *ChatScreen) handleQuizCompleted(msg quizscreen.CompletedMsg) (screen.Screen, tea.Cmd) {
	s.sess.QuizTool.LastQuiz = nil
	s.pendingQuiz = false

	if !msg.Result.OK {
		s.messages = append(s.messages, chatMessage{Text: "The quiz could not be scored: " + msg.Result.Message})
		return s, nil
	}

	sess := s.sess
	result := msg.Result
	moduleID := msg.ModuleID
	return s, func() tea.Msg {
		m := sess.Plan.FindModule(moduleID)
		if m == nil {
			// Quizzes can target topics outside the plan; nothing to
			// unlock then.
			return moduleCompletedMsg{Score: result.Score}
		}
		title := m.Title

		if err := sess.CompleteModule(context.Background(), moduleID, result.Score); err != nil {
			return moduleCompletedMsg{Err: err}
		}

		var unlocked string
		if next := sess.Plan.ActiveModule(); next != nil && next.ID != moduleID {
			unlocked = next.Title
		}
		return moduleCompletedMsg{ModuleTitle: title, Score: result.Score, Unlocked: unlocked}
	}
}

func (s *ChatScreen) handleModuleCompleted(msg moduleCompletedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.messages = append(s.messages, chatMessage{Text: fmt.Sprintf("Your quiz was scored, but saving progress failed: %v", msg.Err)})
		return s, nil
	}

	text := fmt.Sprintf("Quiz scored: %.1f%%.", msg.Score)
	if msg.ModuleTitle != "" {
		text = fmt.Sprintf("Module %q completed with %.1f%%.", msg.ModuleTitle, msg.Score)
	}
	if msg.Unlocked != "" {
		text += fmt.Sprintf(" Next up: %q.", msg.Unlocked)
	}
	s.messages = append(s.messages, chatMessage{Text: text})
	return s, nil
}

// planModules exposes the plan for rendering.
func (s *ChatScreen) planModules() []*domain.Module {
	return s.sess.Plan.Modules
}
