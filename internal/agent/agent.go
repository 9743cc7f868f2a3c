// Package agent drives the learning conversation. Each user turn runs
// a bounded decision loop: the model either replies or calls one of
// the registered tools, with tool output fed back before the next
// decision.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/tools"
	"github.com/abhisek/pathwise/internal/trace"
)

// Config holds the agent's generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// MaxToolRounds bounds tool calls within a single user turn.
	MaxToolRounds int
	// MaxHistory bounds the conversation window sent to the model, in
	// messages. Older messages are dropped from the front.
	MaxHistory int
}

// DefaultConfig returns the recommended agent settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     1024,
		Temperature:   0.7,
		MaxToolRounds: 5,
		MaxHistory:    40,
	}
}

// Agent is a conversational assistant scoped to one skill and level.
type Agent struct {
	provider llm.Provider
	registry *tools.Registry
	recorder *trace.Recorder
	cfg      Config

	system  string
	history []llm.Message
}

// New creates an agent for the given skill and level. recorder may be
// nil to disable tool tracing.
func New(provider llm.Provider, registry *tools.Registry, recorder *trace.Recorder, skill string, level domain.Level, cfg Config) *Agent {
	return &Agent{
		provider: provider,
		registry: registry,
		recorder: recorder,
		cfg:      cfg,
		system:   buildSystemPrompt(skill, level, registry),
	}
}

// decision is the raw model output for one loop iteration.
type decision struct {
	Action   string          `json:"action"`
	Message  string          `json:"message"`
	ToolName string          `json:"tool_name"`
	ToolArgs json.RawMessage `json:"tool_args"`
}

// Chat handles one user turn and returns the assistant's reply. On
// error the conversation history keeps the user message so the user
// can retry.
func (a *Agent) Chat(ctx context.Context, userMessage string) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	a.append(llm.Message{Role: llm.RoleUser, Content: userMessage})

	for round := 0; ; round++ {
		d, err := a.decide(ctx)
		if err != nil {
			return "", err
		}

		if d.Action != "call_tool" {
			a.append(llm.Message{Role: llm.RoleAssistant, Content: d.Message})
			return d.Message, nil
		}

		if round >= a.cfg.MaxToolRounds {
			return "", fmt.Errorf("tool round limit reached after %d calls", round)
		}

		result := a.callTool(ctx, d)

		// The model sees its own tool call and the result on the next
		// iteration.
		a.append(llm.Message{Role: llm.RoleAssistant, Content: fmt.Sprintf("[calling tool %s with %s]", d.ToolName, d.ToolArgs)})
		a.append(llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("Tool result from %s:\n%s", d.ToolName, result)})
	}
}

// decide runs one model call and parses the decision.
func (a *Agent) decide(ctx context.Context) (*decision, error) {
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      a.system,
		Messages:    a.window(),
		Schema:      DecisionSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM turn failed: %w", err)
	}

	var d decision
	if err := json.Unmarshal(resp.Content, &d); err != nil {
		return nil, fmt.Errorf("failed to parse assistant decision: %w", err)
	}
	return &d, nil
}

// callTool executes the requested tool and records the call. Failures
// are reported back to the model as text so it can recover.
func (a *Agent) callTool(ctx context.Context, d *decision) string {
	args := d.ToolArgs
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	start := time.Now()
	result, err := a.registry.Call(ctx, d.ToolName, args)

	if a.recorder != nil {
		var errText string
		if err != nil {
			errText = err.Error()
		}
		a.recorder.Record(trace.Entry{
			Time:     start,
			Kind:     trace.KindTool,
			Label:    d.ToolName,
			Input:    string(args),
			Output:   result,
			Err:      errText,
			Duration: time.Since(start),
		})
	}

	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return result
}

func (a *Agent) append(m llm.Message) {
	a.history = append(a.history, m)
}

// window returns the recent history respecting MaxHistory.
func (a *Agent) window() []llm.Message {
	if a.cfg.MaxHistory <= 0 || len(a.history) <= a.cfg.MaxHistory {
		return a.history
	}
	return a.history[len(a.history)-a.cfg.MaxHistory:]
}

// History returns a copy of the full conversation so far.
func (a *Agent) History() []llm.Message {
	out := make([]llm.Message, len(a.history))
	copy(out, a.history)
	return out
}

// Reset clears the conversation history.
func (a *Agent) Reset() {
	a.history = nil
}

// ErrorReply converts an agent error into the message shown to the
// user.
func ErrorReply(err error) string {
	return fmt.Sprintf("I encountered an error: %v. Please try rephrasing your question.", err)
}
