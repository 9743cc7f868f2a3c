package chat

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/quiz"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	quizscreen "github.com/abhisek/pathwise/internal/screens/quiz"
	"github.com/abhisek/pathwise/internal/search"
	"github.com/abhisek/pathwise/internal/session"
	"github.com/abhisek/pathwise/internal/trace"
)

func respondJSON(message string) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{
		"action": "respond", "message": message, "tool_name": "", "tool_args": map[string]any{},
	})
	return raw
}

func testSession(t *testing.T, responses ...llm.MockResponse) (*session.Session, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	s, err := session.New(session.Deps{
		Provider: mock,
		Profiles: profile.NewMemoryStore(),
		Searcher: search.NewStaticSearcher(),
		Recorder: trace.NewRecorder(10),
		UserID:   "test_user",
	}, "Python", domain.LevelBeginner)
	if err != nil {
		t.Fatal(err)
	}
	return s, mock
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestChat_SendAndReply(t *testing.T) {
	sess, _ := testSession(t, llm.MockResponse{Content: respondJSON("Hello, learner!")})
	s := New(sess)

	s.input.Model.SetValue("hi there")
	updated, cmd := s.Update(enterKey())
	s = updated.(*ChatScreen)

	if !s.waiting {
		t.Error("expected waiting state after send")
	}
	if cmd == nil {
		t.Fatal("expected send command")
	}

	// Run the agent turn and feed the reply back.
	updated, _ = s.Update(cmd())
	s = updated.(*ChatScreen)

	if s.waiting {
		t.Error("expected waiting cleared after reply")
	}
	last := s.messages[len(s.messages)-1]
	if last.FromUser || last.Text != "Hello, learner!" {
		t.Errorf("unexpected last message: %+v", last)
	}
}

func TestChat_EmptyInputIgnored(t *testing.T) {
	sess, mock := testSession(t)
	s := New(sess)

	updated, cmd := s.Update(enterKey())
	s = updated.(*ChatScreen)

	if cmd != nil || s.waiting {
		t.Error("expected empty input to be a no-op")
	}
	if mock.CallCount() != 0 {
		t.Error("expected no LLM calls")
	}
}

func TestChat_ErrorReplyShown(t *testing.T) {
	sess, _ := testSession(t) // no responses queued: provider errors
	s := New(sess)

	s.input.Model.SetValue("hi")
	updated, cmd := s.Update(enterKey())
	s = updated.(*ChatScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*ChatScreen)

	last := s.messages[len(s.messages)-1]
	if !strings.Contains(last.Text, "I encountered an error:") {
		t.Errorf("expected error reply, got %q", last.Text)
	}
}

func TestChat_QuizBecomesTakeable(t *testing.T) {
	sess, _ := testSession(t, llm.MockResponse{Content: respondJSON("Here is your quiz!")})
	s := New(sess)

	// Simulate the quiz tool having produced a quiz during the turn.
	q, err := domain.NewQuiz(1, "Python", domain.LevelBeginner, mustQuestions(t))
	if err != nil {
		t.Fatal(err)
	}

	s.input.Model.SetValue("quiz me")
	updated, cmd := s.Update(enterKey())
	s = updated.(*ChatScreen)

	sess.QuizTool.LastQuiz = q
	updated, _ = s.Update(cmd())
	s = updated.(*ChatScreen)

	if !s.pendingQuiz {
		t.Fatal("expected pending quiz after reply")
	}

	// Ctrl+Q pushes the quiz screen.
	updated, cmd = s.Update(tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl})
	s = updated.(*ChatScreen)
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected push message, got %T", msg)
	}
	if _, ok := push.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("expected quiz screen, got %T", push.Screen)
	}
	if s.pendingQuiz {
		t.Error("expected pending flag cleared once quiz starts")
	}
}

func TestChat_QuizCompletionUpdatesPlanAndProfile(t *testing.T) {
	sess, _ := testSession(t)
	s := New(sess)

	first := sess.Plan.Modules[0]
	result := &quiz.Result{OK: true, Score: 90, Correct: 9, Total: 10}

	updated, cmd := s.Update(quizscreen.CompletedMsg{ModuleID: first.ID, Result: result})
	s = updated.(*ChatScreen)
	if cmd == nil {
		t.Fatal("expected completion command")
	}

	updated, _ = s.Update(cmd())
	s = updated.(*ChatScreen)

	if sess.Plan.Modules[0].Status != domain.StatusCompleted {
		t.Errorf("expected module completed, got %v", sess.Plan.Modules[0].Status)
	}
	if sess.Plan.Modules[1].Status != domain.StatusActive {
		t.Errorf("expected next module active, got %v", sess.Plan.Modules[1].Status)
	}

	last := s.messages[len(s.messages)-1]
	if !strings.Contains(last.Text, "completed with 90.0%") {
		t.Errorf("unexpected completion message: %q", last.Text)
	}
	if !strings.Contains(last.Text, "Next up:") {
		t.Errorf("expected unlock notice: %q", last.Text)
	}
}

func TestChat_ViewShowsPlanSidebar(t *testing.T) {
	sess, _ := testSession(t)
	s := New(sess)

	view := s.View(120, 40)
	for _, want := range []string{"Learning Plan", "Foundations of Python", "Core Concepts in Python"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestChat_TraceToggle(t *testing.T) {
	sess, _ := testSession(t)
	s := New(sess)

	updated, _ := s.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	s = updated.(*ChatScreen)
	if !s.showTrace {
		t.Fatal("expected trace pane enabled")
	}

	view := s.View(120, 40)
	if !strings.Contains(view, "Activity trace") {
		t.Error("expected trace pane in view")
	}
}

func mustQuestions(t *testing.T) []*domain.QuizQuestion {
	t.Helper()
	qs := make([]*domain.QuizQuestion, 0, 3)
	for i := 0; i < 3; i++ {
		q, err := domain.NewQuizQuestion("Q?", []string{"a", "b"}, 0, "")
		if err != nil {
			t.Fatal(err)
		}
		qs = append(qs, q)
	}
	return qs
}

var _ screen.Screen = (*ChatScreen)(nil)
