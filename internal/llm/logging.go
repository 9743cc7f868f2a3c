package llm

import (
	"context"
	"time"

	"github.com/abhisek/pathwise/internal/trace"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose labels the context so trace entries say what a request
// was for ("quiz-gen", "agent-turn", ...).
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// tracingProvider records every LLM round trip into the trace recorder.
type tracingProvider struct {
	inner    Provider
	recorder *trace.Recorder
}

// WithTracing wraps a Provider so every Generate call lands in the
// recorder. Recording never fails the request.
func WithTracing(p Provider, rec *trace.Recorder) Provider {
	return &tracingProvider{inner: p, recorder: rec}
}

func (t *tracingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := t.inner.Generate(ctx, req)

	entry := trace.Entry{
		Kind:     trace.KindLLM,
		Label:    PurposeFrom(ctx),
		Input:    summarizeRequest(req),
		Duration: time.Since(start),
	}
	if resp != nil {
		entry.Output = string(resp.Content)
	}
	if err != nil {
		entry.Err = err.Error()
	}
	t.recorder.Record(entry)

	return resp, err
}

func (t *tracingProvider) ModelID() string {
	return t.inner.ModelID()
}

// summarizeRequest renders the last user message, which is what a
// reader of the trace pane wants to see.
func summarizeRequest(req Request) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			return req.Messages[i].Content
		}
	}
	return req.System
}
