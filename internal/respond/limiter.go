package respond

import (
	"sync"
	"time"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
)

const (
	defaultDailyBudget  = 1000
	defaultMinuteBudget = 50
)

// RequestBudget enforces a process-wide cap on generative calls: a rolling
// per-minute window and a per-calendar-day counter. It guards spend on the
// upstream model, not per-user fairness.
type RequestBudget struct {
	mu sync.Mutex

	dailyMax  int
	minuteMax int

	dailyCount  int
	minuteCount int
	day         time.Time
	minuteStart time.Time

	now func() time.Time
}

// NewRequestBudget builds a budget with the given caps; non-positive caps
// select the defaults (1000/day, 50/minute).
func NewRequestBudget(dailyMax, minuteMax int) *RequestBudget {
	if dailyMax <= 0 {
		dailyMax = defaultDailyBudget
	}
	if minuteMax <= 0 {
		minuteMax = defaultMinuteBudget
	}
	return &RequestBudget{
		dailyMax:  dailyMax,
		minuteMax: minuteMax,
		now:       time.Now,
	}
}

// Consume takes one unit from both windows, or returns domain.ErrRateLimited
// when either cap is already reached. The check happens before the
// increment, so the first call past a cap fails and does not count.
func (b *RequestBudget) Consume() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	day := now.Truncate(24 * time.Hour)
	if !day.Equal(b.day) {
		b.day = day
		b.dailyCount = 0
	}
	if now.Sub(b.minuteStart) >= time.Minute {
		b.minuteStart = now
		b.minuteCount = 0
	}

	if b.dailyCount >= b.dailyMax || b.minuteCount >= b.minuteMax {
		return domain.ErrRateLimited
	}
	b.dailyCount++
	b.minuteCount++
	return nil
}
