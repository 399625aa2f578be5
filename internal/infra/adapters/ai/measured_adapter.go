// File: internal/infra/adapters/ai/measured_adapter.go
package ai

import (
	"context"
	"time"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/metrics"
)

var _ adapter.AIServiceAdapter = (*measuredAI)(nil)

// measuredAI records token usage and latency for every chat call. Plain Chat
// calls go through ChatWithUsage underneath so usage is never lost.
type measuredAI struct {
	inner    adapter.AIServiceAdapter
	provider string
}

func NewMeasuredAI(inner adapter.AIServiceAdapter, provider string) adapter.AIServiceAdapter {
	return &measuredAI{inner: inner, provider: provider}
}

func (m *measuredAI) Chat(ctx context.Context, model string, messages []adapter.Message) (string, error) {
	text, _, err := m.ChatWithUsage(ctx, model, messages)
	return text, err
}

func (m *measuredAI) ChatWithUsage(ctx context.Context, model string, messages []adapter.Message) (string, adapter.Usage, error) {
	start := time.Now()
	text, u, err := m.inner.ChatWithUsage(ctx, model, messages)
	latency := int(time.Since(start).Milliseconds())
	metrics.ObserveChatUsage(m.provider, model, u.PromptTokens, u.CompletionTokens, u.TotalTokens, latency, err == nil)
	return text, u, err
}

func (m *measuredAI) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	return m.inner.CountTokens(ctx, model, messages)
}
