// File: internal/infra/adapters/ai/failover_adapter.go
package ai

import (
	"context"
	"errors"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
)

var _ adapter.AIServiceAdapter = (*FailoverAdapter)(nil)

// FailoverAdapter tries providers in order and moves to the next one when a
// call fails. Context cancellation stops the chain immediately: a timeout
// must not cascade into a second slow call.
type FailoverAdapter struct {
	chain []adapter.AIServiceAdapter
}

func NewFailoverAdapter(chain ...adapter.AIServiceAdapter) *FailoverAdapter {
	return &FailoverAdapter{chain: chain}
}

func (f *FailoverAdapter) Chat(ctx context.Context, model string, messages []adapter.Message) (string, error) {
	var lastErr error
	for _, a := range f.chain {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := a.Chat(ctx, model, messages)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("ai: no providers configured")
	}
	return "", lastErr
}

func (f *FailoverAdapter) ChatWithUsage(ctx context.Context, model string, messages []adapter.Message) (string, adapter.Usage, error) {
	var lastErr error
	for _, a := range f.chain {
		if err := ctx.Err(); err != nil {
			return "", adapter.Usage{}, err
		}
		text, u, err := a.ChatWithUsage(ctx, model, messages)
		if err == nil {
			return text, u, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("ai: no providers configured")
	}
	return "", adapter.Usage{}, lastErr
}

func (f *FailoverAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	var lastErr error
	for _, a := range f.chain {
		n, err := a.CountTokens(ctx, model, messages)
		if err == nil {
			return n, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("ai: no providers configured")
	}
	return 0, lastErr
}
