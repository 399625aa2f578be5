// File: internal/usecase/mood_uc.go
package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
)

// Compile-time check
var _ MoodUseCase = (*moodUC)(nil)

// MoodInsight is a short reflection on recent mood history plus concrete
// suggestions. The text comes from the model when available, otherwise from
// the static recommendation table.
type MoodInsight struct {
	Insight         string               `json:"insight"`
	Recommendations []string             `json:"recommendations"`
	Statistics      model.MoodStatistics `json:"statistics"`
	Generated       bool                 `json:"generated"` // true when model-written
}

type MoodUseCase interface {
	LogMood(ctx context.Context, e *model.MoodEntry) error
	MoodHistory(ctx context.Context, sessionID string, days int) ([]model.MoodEntry, error)
	Statistics(ctx context.Context, sessionID string, days int) (model.MoodStatistics, error)
	Insights(ctx context.Context, sessionID string, days int) (*MoodInsight, error)
}

type moodUC struct {
	sessions repository.SessionRepository
	ai       adapter.AIServiceAdapter
	model    string
	log      *zerolog.Logger
}

func NewMoodUseCase(sessions repository.SessionRepository, ai adapter.AIServiceAdapter, model string, logger *zerolog.Logger) *moodUC {
	return &moodUC{sessions: sessions, ai: ai, model: model, log: logger}
}

func (m *moodUC) LogMood(ctx context.Context, e *model.MoodEntry) error {
	if !e.Mood.Valid() {
		return domain.ErrInvalidArgument
	}
	if e.Intensity == 0 {
		e.Intensity = 5
	}
	if e.Intensity < 1 || e.Intensity > 10 {
		return domain.ErrInvalidArgument
	}
	if _, err := m.sessions.Find(ctx, e.SessionID); err != nil {
		return err
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return m.sessions.AppendMoodEntry(ctx, e)
}

func (m *moodUC) MoodHistory(ctx context.Context, sessionID string, days int) ([]model.MoodEntry, error) {
	return m.sessions.MoodEntries(ctx, sessionID, sinceDays(days))
}

func (m *moodUC) Statistics(ctx context.Context, sessionID string, days int) (model.MoodStatistics, error) {
	entries, err := m.sessions.MoodEntries(ctx, sessionID, sinceDays(days))
	if err != nil {
		return model.MoodStatistics{}, err
	}
	return ComputeMoodStatistics(entries), nil
}

func (m *moodUC) Insights(ctx context.Context, sessionID string, days int) (*MoodInsight, error) {
	entries, err := m.sessions.MoodEntries(ctx, sessionID, sinceDays(days))
	if err != nil {
		return nil, err
	}
	stats := ComputeMoodStatistics(entries)
	out := &MoodInsight{
		Statistics:      stats,
		Recommendations: recommendationsFor(stats),
	}

	// Below 3 entries there is not enough signal for the model to reflect
	// on; the static summary serves instead.
	if m.ai != nil && stats.TotalEntries >= 3 {
		if insight, err := m.generateInsight(ctx, stats); err == nil {
			out.Insight = insight
			out.Generated = true
			return out, nil
		} else {
			m.log.Warn().Err(err).Msg("mood insight generation failed; using static text")
		}
	}
	out.Insight = staticInsight(stats)
	return out, nil
}

func (m *moodUC) generateInsight(ctx context.Context, stats model.MoodStatistics) (string, error) {
	summary := fmt.Sprintf(
		"Entries: %d. Most common mood: %s. Average intensity: %.1f/10. Trend: %s. Common triggers: %s.",
		stats.TotalEntries, stats.MostCommonMood, stats.AverageIntensity, stats.Trend,
		strings.Join(stats.CommonTriggers, ", "),
	)
	turns := []adapter.Message{
		{Role: "system", Content: "You are a gentle wellness companion. Given a mood log summary, write 2-3 warm, encouraging sentences reflecting on the pattern. Never diagnose."},
		{Role: "user", Content: summary},
	}
	text, err := m.ai.Chat(ctx, m.model, turns)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty insight")
	}
	return text, nil
}

// ComputeMoodStatistics summarizes entries: distribution, the most common
// mood (enum order breaks ties), average intensity to one decimal, the
// half-window trend over mood ordinals, and the most frequent triggers and
// the activities logged alongside happier moods.
func ComputeMoodStatistics(entries []model.MoodEntry) model.MoodStatistics {
	stats := model.MoodStatistics{
		MoodDistribution: make(map[model.Mood]int),
		TotalEntries:     len(entries),
	}
	if len(entries) == 0 {
		stats.Trend = "neutral"
		return stats
	}

	var intensitySum int
	triggerCounts := map[string]int{}
	activityCounts := map[string]int{}
	for _, e := range entries {
		stats.MoodDistribution[e.Mood]++
		intensitySum += e.Intensity
		for _, t := range e.Triggers {
			triggerCounts[t]++
		}
		if e.Mood == model.MoodHappy || e.Mood == model.MoodVeryHappy {
			for _, a := range e.Activities {
				activityCounts[a]++
			}
		}
	}

	stats.AverageIntensity = math.Round(float64(intensitySum)/float64(len(entries))*10) / 10

	best := 0
	for _, mood := range model.Moods() {
		if n := stats.MoodDistribution[mood]; n > best {
			best = n
			stats.MostCommonMood = mood
		}
	}

	stats.Trend = moodTrend(entries)
	stats.CommonTriggers = topKeys(triggerCounts, 3)
	stats.HelpfulActivities = topKeys(activityCounts, 3)
	return stats
}

// moodTrend compares average mood ordinals of the first and second half of
// the log. An odd-length log gives the extra entry to the first half.
func moodTrend(entries []model.MoodEntry) string {
	if len(entries) < 2 {
		return "neutral"
	}
	mid := (len(entries) + 1) / 2
	diff := meanMood(entries[mid:]) - meanMood(entries[:mid])
	switch {
	case diff > 0.5:
		return "improving"
	case diff < -0.5:
		return "declining"
	default:
		return "stable"
	}
}

func meanMood(entries []model.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Mood.Value()
	}
	return float64(sum) / float64(len(entries))
}

func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func recommendationsFor(stats model.MoodStatistics) []string {
	switch stats.Trend {
	case "declining":
		return []string{
			"Try a 5-minute breathing exercise when things feel heavy.",
			"Reach out to a friend or family member you trust today.",
			"Consider talking to a counselor if the low mood persists.",
		}
	case "improving":
		return []string{
			"Whatever you've been doing is working; keep it up.",
			"Note down what helped so you can return to it on harder days.",
		}
	default:
		return []string{
			"A short daily walk can help keep your mood steady.",
			"Logging your mood regularly makes patterns easier to spot.",
		}
	}
}

func staticInsight(stats model.MoodStatistics) string {
	if stats.TotalEntries == 0 {
		return "No mood entries yet. Log how you're feeling to start seeing patterns."
	}
	return fmt.Sprintf(
		"Over your last %d entries your mood has been %s, most often %s with an average intensity of %.1f/10.",
		stats.TotalEntries, stats.Trend, stats.MostCommonMood, stats.AverageIntensity,
	)
}

func sinceDays(days int) time.Time {
	if days <= 0 {
		days = 30
	}
	return time.Now().AddDate(0, 0, -days)
}
