package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
)

func TestScoreDeterministic(t *testing.T) {
	text := "I am happy and grateful but a bit tired"
	a := Score(text)
	b := Score(text)
	if a != b {
		t.Fatalf("Score is not deterministic: %+v vs %+v", a, b)
	}
}

func TestScorePositive(t *testing.T) {
	a := Score("I feel happy and grateful and proud today")
	if a.PositiveCount != 3 {
		t.Fatalf("positiveCount = %d, want 3", a.PositiveCount)
	}
	if a.NegativeCount != 0 {
		t.Fatalf("negativeCount = %d, want 0", a.NegativeCount)
	}
	if a.Score != 1 {
		t.Fatalf("score = %v, want 1", a.Score)
	}
	if a.Label != LabelPositive {
		t.Fatalf("label = %s, want positive", a.Label)
	}
}

func TestScoreMagnitude(t *testing.T) {
	// 8 tokens, 2 sentiment hits.
	a := Score("so sad and worried about my board exams")
	if a.NegativeCount != 2 {
		t.Fatalf("negativeCount = %d, want 2", a.NegativeCount)
	}
	if want := 2.0 / 8.0; a.Magnitude != want {
		t.Fatalf("magnitude = %v, want %v", a.Magnitude, want)
	}
	if a.Score != -1 {
		t.Fatalf("score = %v, want -1", a.Score)
	}
}

func TestScoreEmptyAndNeutral(t *testing.T) {
	for _, text := range []string{"", "the train leaves at nine"} {
		a := Score(text)
		if a.Score != 0 || a.Label != LabelNeutral {
			t.Fatalf("Score(%q) = {%v,%s}, want {0,neutral}", text, a.Score, a.Label)
		}
	}
	if Score("").Magnitude != 0 {
		t.Fatal("magnitude of empty text must be 0")
	}
}

func TestLabelThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.5, LabelPositive},
		{0.2, LabelSlightlyPositive},
		{0.0, LabelNeutral},
		{-0.2, LabelSlightlyNegative},
		{-0.5, LabelNegative},
	}
	for _, c := range cases {
		if got := Label(c.score); got != c.want {
			t.Fatalf("Label(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

// ---- Analyzer / provider fallback ----

type fakeProvider struct {
	res   adapter.SentimentResult
	err   error
	calls int
}

func (f *fakeProvider) AnalyzeSentiment(ctx context.Context, text string) (adapter.SentimentResult, error) {
	f.calls++
	return f.res, f.err
}

var _ adapter.SentimentProvider = (*fakeProvider)(nil)

func TestAnalyzerPrefersProvider(t *testing.T) {
	p := &fakeProvider{res: adapter.SentimentResult{Score: 0.8, Magnitude: 0.6}}
	a := NewAnalyzer(p, true, 10, nil)
	res := a.Analyze(context.Background(), "whatever")
	if !res.UsedCloudNLP {
		t.Fatal("expected cloud path to be used")
	}
	if res.Label != LabelPositive {
		t.Fatalf("label = %s, want positive", res.Label)
	}
}

func TestAnalyzerFallsBackOnError(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	a := NewAnalyzer(p, true, 10, nil)
	res := a.Analyze(context.Background(), "I am happy")
	if res.UsedCloudNLP {
		t.Fatal("expected lexicon fallback on provider error")
	}
	if res.PositiveCount != 1 {
		t.Fatalf("positiveCount = %d, want 1", res.PositiveCount)
	}
}

func TestAnalyzerDailyCap(t *testing.T) {
	p := &fakeProvider{res: adapter.SentimentResult{Score: 0.5}}
	a := NewAnalyzer(p, true, 2, nil)
	ctx := context.Background()
	a.Analyze(ctx, "one")
	a.Analyze(ctx, "two")
	res := a.Analyze(ctx, "three")
	if res.UsedCloudNLP {
		t.Fatal("expected lexicon fallback once the daily cap is spent")
	}
	if p.calls != 2 {
		t.Fatalf("provider calls = %d, want 2", p.calls)
	}
}

func TestAnalyzerDisabled(t *testing.T) {
	p := &fakeProvider{res: adapter.SentimentResult{Score: 0.5}}
	a := NewAnalyzer(p, false, 10, nil)
	res := a.Analyze(context.Background(), "hello")
	if res.UsedCloudNLP || p.calls != 0 {
		t.Fatal("disabled analyzer must never call the provider")
	}
}

// ---- Sentiment trend ----

func TestSentimentTrendImproving(t *testing.T) {
	msgs := []model.Message{
		{Content: "so sad and hopeless"},
		{Content: "feeling awful and worthless"},
		{Content: "a bit better today"},
		{Content: "actually happy and hopeful now"},
	}
	r := AnalyzeTrend(msgs)
	if r.Trend != "improving" {
		t.Fatalf("trend = %s (improvement %v), want improving", r.Trend, r.Improvement)
	}
}

func TestSentimentTrendEmpty(t *testing.T) {
	r := AnalyzeTrend(nil)
	if r.Trend != "neutral" || r.AvgScore != 0 {
		t.Fatalf("trend = %+v, want neutral/0", r)
	}
}
