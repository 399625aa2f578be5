package crisis

import (
	"testing"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

func userMsg(content string) model.Message {
	return model.Message{Role: model.RoleUser, Content: content}
}

func assistantMsg(content string) model.Message {
	return model.Message{Role: model.RoleAssistant, Content: content}
}

func TestAnalyzeTrendShortHistory(t *testing.T) {
	histories := [][]model.Message{
		nil,
		{userMsg("I want to kill myself")},
		{userMsg("a"), assistantMsg("b"), userMsg("c"), assistantMsg("d")},
	}
	for _, h := range histories {
		r := AnalyzeTrend(h)
		if r.Trend != TrendNeutral || r.Confidence != "low" {
			t.Fatalf("AnalyzeTrend(%d msgs) = {%s,%s}, want {neutral,low}", len(h), r.Trend, r.Confidence)
		}
	}
}

func TestAnalyzeTrendStable(t *testing.T) {
	var h []model.Message
	for i := 0; i < 3; i++ {
		h = append(h, userMsg("today was a normal school day"))
		h = append(h, assistantMsg("glad to hear it"))
	}
	r := AnalyzeTrend(h)
	if r.Trend != TrendStable {
		t.Fatalf("trend = %s, want stable", r.Trend)
	}
	if r.Confidence != "medium" {
		t.Fatalf("confidence = %s, want medium", r.Confidence)
	}
	if r.Recommendation == "" {
		t.Fatal("expected a recommendation for every trend label")
	}
}

func TestAnalyzeTrendWorsening(t *testing.T) {
	var h []model.Message
	for i := 0; i < 5; i++ {
		h = append(h, userMsg("I want to die and want to kill myself"))
		h = append(h, assistantMsg("please reach out for help"))
	}
	r := AnalyzeTrend(h)
	if r.Trend != TrendWorsening {
		t.Fatalf("trend = %s (avg %v), want worsening", r.Trend, r.AvgScore)
	}
	if r.Confidence != "high" {
		t.Fatalf("confidence = %s, want high", r.Confidence)
	}
}

func TestAnalyzeTrendUsesOnlyUserTurns(t *testing.T) {
	// Assistant turns carry crisis vocabulary but must not be classified.
	var h []model.Message
	for i := 0; i < 5; i++ {
		h = append(h, userMsg("tell me about the weather"))
		h = append(h, assistantMsg("if you ever want to kill myself phrasing appears here it is ignored"))
	}
	r := AnalyzeTrend(h)
	if r.Trend != TrendStable {
		t.Fatalf("trend = %s, want stable when only assistant turns contain keywords", r.Trend)
	}
	if r.AvgScore != 0 {
		t.Fatalf("avgScore = %v, want 0", r.AvgScore)
	}
}

func TestAnalyzeTrendWindowIsLastTen(t *testing.T) {
	// Old crisis turns beyond the 10-message window must not count.
	var h []model.Message
	for i := 0; i < 6; i++ {
		h = append(h, userMsg("I want to kill myself"))
	}
	for i := 0; i < 10; i++ {
		h = append(h, userMsg("doing fine today"))
	}
	r := AnalyzeTrend(h)
	if r.Trend != TrendStable {
		t.Fatalf("trend = %s, want stable once crisis turns age out of the window", r.Trend)
	}
}
