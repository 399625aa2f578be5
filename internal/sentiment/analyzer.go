package sentiment

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
)

// Analyzer scores text; when a cloud provider is configured and enabled it is
// preferred, bounded by a process-wide daily usage cap. Any provider failure
// or cap breach degrades silently to the lexicon scorer: scoring never
// surfaces an error to its caller.
type Analyzer struct {
	provider adapter.SentimentProvider
	enabled  bool
	dailyCap int
	log      *zerolog.Logger

	mu       sync.Mutex
	used     int
	capDay   time.Time
	now      func() time.Time
}

func NewAnalyzer(provider adapter.SentimentProvider, enabled bool, dailyCap int, logger *zerolog.Logger) *Analyzer {
	if dailyCap <= 0 {
		dailyCap = 4000
	}
	return &Analyzer{
		provider: provider,
		enabled:  enabled && provider != nil,
		dailyCap: dailyCap,
		log:      logger,
		now:      time.Now,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) Analysis {
	if a.enabled {
		if res, ok := a.tryProvider(ctx, text); ok {
			return res
		}
	}
	return Score(text)
}

func (a *Analyzer) tryProvider(ctx context.Context, text string) (Analysis, bool) {
	if !a.consume() {
		return Analysis{}, false
	}
	res, err := a.provider.AnalyzeSentiment(ctx, text)
	if err != nil {
		if a.log != nil {
			a.log.Warn().Err(err).Msg("cloud sentiment failed; falling back to lexicon")
		}
		return Analysis{}, false
	}
	return Analysis{
		Score:        res.Score,
		Magnitude:    res.Magnitude,
		Label:        Label(res.Score),
		Confidence:   abs(res.Score),
		UsedCloudNLP: true,
	}, true
}

// consume takes one unit of the daily budget, rolling the counter over on a
// calendar-day boundary.
func (a *Analyzer) consume() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	today := a.now().Truncate(24 * time.Hour)
	if !today.Equal(a.capDay) {
		a.capDay = today
		a.used = 0
	}
	if a.used >= a.dailyCap {
		return false
	}
	a.used++
	return true
}
