package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/search"
	"github.com/abhisek/pathwise/internal/tools"
	"github.com/abhisek/pathwise/internal/trace"
)

func respondJSON(message string) json.RawMessage {
	d := map[string]any{"action": "respond", "message": message, "tool_name": "", "tool_args": map[string]any{}}
	raw, _ := json.Marshal(d)
	return raw
}

func callToolJSON(name string, args map[string]any) json.RawMessage {
	d := map[string]any{"action": "call_tool", "message": "", "tool_name": name, "tool_args": args}
	raw, _ := json.Marshal(d)
	return raw
}

func testRegistry() *tools.Registry {
	return tools.NewRegistry(
		tools.NewProfileTool(profile.NewMemoryStore(), "default_user"),
		tools.NewSearchTool(search.NewStaticSearcher()),
	)
}

func newTestAgent(registry *tools.Registry, rec *trace.Recorder, responses ...llm.MockResponse) (*Agent, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	a := New(mock, registry, rec, "Python", domain.LevelBeginner, DefaultConfig())
	return a, mock
}

func TestChat_DirectResponse(t *testing.T) {
	a, mock := newTestAgent(testRegistry(), nil,
		llm.MockResponse{Content: respondJSON("Welcome! Ready to learn Python?")},
	)

	reply, err := a.Chat(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Welcome! Ready to learn Python?" {
		t.Errorf("unexpected reply: %q", reply)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}

	// History holds the user turn and the reply.
	h := a.History()
	if len(h) != 2 {
		t.Fatalf("expected 2 history messages, got %d", len(h))
	}
	if h[0].Role != llm.RoleUser || h[1].Role != llm.RoleAssistant {
		t.Errorf("unexpected history roles: %v, %v", h[0].Role, h[1].Role)
	}
}

func TestChat_SystemPromptIncludesSkillAndTools(t *testing.T) {
	a, mock := newTestAgent(testRegistry(), nil,
		llm.MockResponse{Content: respondJSON("ok")},
	)

	if _, err := a.Chat(context.Background(), "hi"); err != nil {
		t.Fatal(err)
	}

	sys := mock.Calls[0].System
	for _, want := range []string{
		"master Python at the beginner level",
		"knowledge_profile_manager",
		"real_time_resource_search",
	} {
		if !strings.Contains(sys, want) {
			t.Errorf("expected system prompt to contain %q", want)
		}
	}
	if mock.Calls[0].Schema != DecisionSchema {
		t.Error("expected decision schema on the request")
	}
}

func TestChat_ToolRoundTrip(t *testing.T) {
	rec := trace.NewRecorder(10)
	a, mock := newTestAgent(testRegistry(), rec,
		llm.MockResponse{Content: callToolJSON("knowledge_profile_manager", map[string]any{"action": "get_summary"})},
		llm.MockResponse{Content: respondJSON("You're just getting started. Let's begin!")},
	)

	reply, err := a.Chat(context.Background(), "how am I doing?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "getting started") {
		t.Errorf("unexpected reply: %q", reply)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", mock.CallCount())
	}

	// The second call must include the tool result.
	msgs := mock.Calls[1].Messages
	last := msgs[len(msgs)-1]
	if last.Role != llm.RoleUser {
		t.Errorf("expected tool result as user message, got %v", last.Role)
	}
	if !strings.Contains(last.Content, "Tool result from knowledge_profile_manager") {
		t.Errorf("expected tool result content, got %q", last.Content)
	}
	if !strings.Contains(last.Content, "No progress yet") {
		t.Errorf("expected summary in tool result, got %q", last.Content)
	}

	// The call was traced.
	entries := rec.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 trace entry, got %d", len(entries))
	}
	if entries[0].Kind != trace.KindTool || entries[0].Label != "knowledge_profile_manager" {
		t.Errorf("unexpected trace entry: %+v", entries[0])
	}
}

func TestChat_ToolFailureReportedToModel(t *testing.T) {
	a, mock := newTestAgent(testRegistry(), nil,
		llm.MockResponse{Content: callToolJSON("no_such_tool", map[string]any{})},
		llm.MockResponse{Content: respondJSON("Sorry, let me try something else.")},
	)

	reply, err := a.Chat(context.Background(), "do the thing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Sorry, let me try something else." {
		t.Errorf("unexpected reply: %q", reply)
	}

	msgs := mock.Calls[1].Messages
	last := msgs[len(msgs)-1]
	if !strings.Contains(last.Content, "unknown tool") {
		t.Errorf("expected tool error fed back to model, got %q", last.Content)
	}
}

func TestChat_ToolRoundLimit(t *testing.T) {
	// The model keeps asking for tools; the loop must stop.
	responses := make([]llm.MockResponse, 0, 8)
	for i := 0; i < 8; i++ {
		responses = append(responses, llm.MockResponse{
			Content: callToolJSON("knowledge_profile_manager", map[string]any{"action": "get_summary"}),
		})
	}

	cfg := DefaultConfig()
	cfg.MaxToolRounds = 3
	mock := llm.NewMockProvider(responses...)
	a := New(mock, testRegistry(), nil, "Python", domain.LevelBeginner, cfg)

	_, err := a.Chat(context.Background(), "loop forever")
	if err == nil || !strings.Contains(err.Error(), "tool round limit") {
		t.Fatalf("expected round limit error, got %v", err)
	}
	if mock.CallCount() != 4 {
		t.Errorf("expected 4 LLM calls (3 tool rounds + 1), got %d", mock.CallCount())
	}
}

func TestChat_ProviderError(t *testing.T) {
	a, _ := newTestAgent(testRegistry(), nil,
		llm.MockResponse{Err: errors.New("API down")},
	)

	_, err := a.Chat(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error")
	}

	msg := ErrorReply(err)
	if !strings.Contains(msg, "I encountered an error:") || !strings.Contains(msg, "rephrasing") {
		t.Errorf("unexpected error reply: %q", msg)
	}
}

func TestChat_HistoryWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistory = 4

	responses := make([]llm.MockResponse, 0, 10)
	for i := 0; i < 10; i++ {
		responses = append(responses, llm.MockResponse{Content: respondJSON(fmt.Sprintf("reply %d", i))})
	}
	mock := llm.NewMockProvider(responses...)
	a := New(mock, testRegistry(), nil, "Python", domain.LevelBeginner, cfg)

	for i := 0; i < 5; i++ {
		if _, err := a.Chat(context.Background(), fmt.Sprintf("message %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	// Full history is retained even though the window is bounded.
	if got := len(a.History()); got != 10 {
		t.Errorf("expected 10 history messages, got %d", got)
	}
	lastCall := mock.Calls[len(mock.Calls)-1]
	if len(lastCall.Messages) != 4 {
		t.Errorf("expected window of 4 messages, got %d", len(lastCall.Messages))
	}
}

func TestReset(t *testing.T) {
	a, _ := newTestAgent(testRegistry(), nil,
		llm.MockResponse{Content: respondJSON("hello")},
	)
	if _, err := a.Chat(context.Background(), "hi"); err != nil {
		t.Fatal(err)
	}

	a.Reset()
	if len(a.History()) != 0 {
		t.Error("expected empty history after reset")
	}
}
