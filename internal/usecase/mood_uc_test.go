// File: internal/usecase/mood_uc_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

func newMoodFixture(ai *fakeChatAI) (*moodUC, *fakeSessionRepo, *model.Session) {
	repo := newFakeSessionRepo()
	logger := zerolog.Nop()
	s := model.NewSession("sess-1", "en")
	_ = repo.Create(context.Background(), s)
	uc := NewMoodUseCase(repo, ai, "test-model", &logger)
	return uc, repo, s
}

func entry(sessionID string, mood model.Mood, intensity int, at time.Time) *model.MoodEntry {
	return &model.MoodEntry{SessionID: sessionID, Mood: mood, Intensity: intensity, Timestamp: at}
}

func TestLogMoodValidation(t *testing.T) {
	uc, _, s := newMoodFixture(nil)

	cases := []struct {
		name string
		e    *model.MoodEntry
	}{
		{"unknown mood", entry(s.ID, "ecstatic", 5, time.Now())},
		{"intensity negative", entry(s.ID, model.MoodSad, -1, time.Now())},
		{"intensity too high", entry(s.ID, model.MoodSad, 11, time.Now())},
	}
	for _, tc := range cases {
		if err := uc.LogMood(context.Background(), tc.e); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", tc.name, err)
		}
	}

	if err := uc.LogMood(context.Background(), entry("missing", model.MoodSad, 5, time.Now())); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown session: err = %v, want ErrNotFound", err)
	}
	if err := uc.LogMood(context.Background(), entry(s.ID, model.MoodHappy, 7, time.Now())); err != nil {
		t.Errorf("valid entry rejected: %v", err)
	}
}

func TestLogMoodDefaultsOmittedIntensity(t *testing.T) {
	uc, repo, s := newMoodFixture(nil)

	e := entry(s.ID, model.MoodNeutral, 0, time.Now())
	if err := uc.LogMood(context.Background(), e); err != nil {
		t.Fatalf("omitted intensity rejected: %v", err)
	}
	if e.Intensity != 5 {
		t.Errorf("intensity = %d, want default 5", e.Intensity)
	}

	stored, err := repo.MoodEntries(context.Background(), s.ID, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].Intensity != 5 {
		t.Errorf("stored entries = %+v, want one entry with intensity 5", stored)
	}
}

func TestMoodStatisticsImprovingTrend(t *testing.T) {
	uc, repo, s := newMoodFixture(nil)
	now := time.Now()

	// First-half avg 2 (sad, sad), second-half avg 4 (happy): improving.
	moods := []struct {
		mood      model.Mood
		intensity int
	}{
		{model.MoodSad, 3},
		{model.MoodSad, 4},
		{model.MoodHappy, 8},
	}
	for i, m := range moods {
		_ = repo.AppendMoodEntry(context.Background(), entry(s.ID, m.mood, m.intensity, now.Add(time.Duration(i)*time.Minute)))
	}

	stats, err := uc.Statistics(context.Background(), s.ID, 30)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Trend != "improving" {
		t.Errorf("trend = %s, want improving", stats.Trend)
	}
	if stats.AverageIntensity != 5.0 {
		t.Errorf("average intensity = %v, want 5.0", stats.AverageIntensity)
	}
	if stats.MostCommonMood != model.MoodSad {
		t.Errorf("most common mood = %s, want sad", stats.MostCommonMood)
	}
	if stats.TotalEntries != 3 {
		t.Errorf("total entries = %d, want 3", stats.TotalEntries)
	}
}

func TestMoodStatisticsTieBreaksByEnumOrder(t *testing.T) {
	entries := []model.MoodEntry{
		{Mood: model.MoodHappy, Intensity: 5},
		{Mood: model.MoodSad, Intensity: 5},
	}
	stats := ComputeMoodStatistics(entries)
	if stats.MostCommonMood != model.MoodSad {
		t.Errorf("most common mood = %s, want sad (lower enum order wins ties)", stats.MostCommonMood)
	}
}

func TestMoodStatisticsEmpty(t *testing.T) {
	stats := ComputeMoodStatistics(nil)
	if stats.Trend != "neutral" || stats.TotalEntries != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestMoodStatisticsTriggersAndActivities(t *testing.T) {
	entries := []model.MoodEntry{
		{Mood: model.MoodSad, Intensity: 3, Triggers: []string{"exams", "sleep"}},
		{Mood: model.MoodSad, Intensity: 4, Triggers: []string{"exams"}},
		{Mood: model.MoodHappy, Intensity: 8, Activities: []string{"cricket", "music"}},
		{Mood: model.MoodVeryHappy, Intensity: 9, Activities: []string{"cricket"}},
	}
	stats := ComputeMoodStatistics(entries)
	if len(stats.CommonTriggers) == 0 || stats.CommonTriggers[0] != "exams" {
		t.Errorf("common triggers = %v, want exams first", stats.CommonTriggers)
	}
	if len(stats.HelpfulActivities) == 0 || stats.HelpfulActivities[0] != "cricket" {
		t.Errorf("helpful activities = %v, want cricket first", stats.HelpfulActivities)
	}
}

func TestInsightsPrefersModelText(t *testing.T) {
	ai := &fakeChatAI{reply: "You've been trending upward, keep going."}
	uc, repo, s := newMoodFixture(ai)
	now := time.Now()
	_ = repo.AppendMoodEntry(context.Background(), entry(s.ID, model.MoodSad, 4, now.Add(-2*time.Hour)))
	_ = repo.AppendMoodEntry(context.Background(), entry(s.ID, model.MoodNeutral, 5, now.Add(-time.Hour)))
	_ = repo.AppendMoodEntry(context.Background(), entry(s.ID, model.MoodHappy, 7, now))

	insight, err := uc.Insights(context.Background(), s.ID, 30)
	if err != nil {
		t.Fatal(err)
	}
	if !insight.Generated || insight.Insight != ai.reply {
		t.Errorf("insight = %+v, want generated model text", insight)
	}
	if len(insight.Recommendations) == 0 {
		t.Error("recommendations missing")
	}
}

func TestInsightsFallsBackOnModelError(t *testing.T) {
	ai := &fakeChatAI{err: errors.New("down")}
	uc, repo, s := newMoodFixture(ai)
	now := time.Now()
	for i := 0; i < 3; i++ {
		_ = repo.AppendMoodEntry(context.Background(), entry(s.ID, model.MoodSad, 4, now.Add(time.Duration(i)*time.Minute)))
	}

	insight, err := uc.Insights(context.Background(), s.ID, 30)
	if err != nil {
		t.Fatal(err)
	}
	if insight.Generated || insight.Insight == "" {
		t.Errorf("expected static insight, got %+v", insight)
	}
}

func TestInsightsStaySummaryUntilThreeEntries(t *testing.T) {
	ai := &fakeChatAI{reply: "Model reflection that should not surface yet."}
	uc, repo, s := newMoodFixture(ai)
	_ = repo.AppendMoodEntry(context.Background(), entry(s.ID, model.MoodHappy, 7, time.Now()))

	insight, err := uc.Insights(context.Background(), s.ID, 30)
	if err != nil {
		t.Fatal(err)
	}
	if insight.Generated {
		t.Error("one entry produced a generated insight, want static summary")
	}
	if insight.Insight == "" || insight.Insight == ai.reply {
		t.Errorf("insight = %q, want static summary text", insight.Insight)
	}
	if ai.calls != 0 {
		t.Errorf("model called %d times with a single entry, want 0", ai.calls)
	}
}
