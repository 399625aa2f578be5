package crisis

import (
	"testing"
)

func TestClassifyCriticalKeyword(t *testing.T) {
	r := Classify("I want to kill myself")
	if r.Severity != SeverityCritical {
		t.Fatalf("severity = %s, want critical", r.Severity)
	}
	if !r.IsCrisis {
		t.Fatal("IsCrisis = false, want true")
	}
	if r.Score < 3 {
		t.Fatalf("score = %v, want >= 3", r.Score)
	}
	if len(r.Keywords) == 0 {
		t.Fatal("expected matched keywords")
	}
}

func TestClassifyHighTierPhrase(t *testing.T) {
	r := Classify("I feel hopeless and don't want to live anymore")
	if r.Severity != SeverityHigh && r.Severity != SeverityCritical {
		t.Fatalf("severity = %s, want high or critical", r.Severity)
	}
	if !r.IsCrisis {
		t.Fatal("IsCrisis = false, want true")
	}
	resp := ResponseFor(r.Severity)
	if resp == nil || len(resp.Helplines) == 0 {
		t.Fatal("expected a non-empty helpline list for severe tiers")
	}
}

func TestClassifyHigherTierWins(t *testing.T) {
	// Contains both a critical and a medium keyword; only the critical tier
	// may be reported.
	r := Classify("everything is pointless, I keep thinking about suicide")
	if r.Severity != SeverityCritical {
		t.Fatalf("severity = %s, want critical", r.Severity)
	}
	for _, kw := range r.Keywords {
		if kw == "everything is pointless" {
			t.Fatal("medium-tier keyword reported alongside critical match")
		}
	}
}

func TestClassifyCollectsAllTierMatches(t *testing.T) {
	r := Classify("I want to die, I really want to end my life")
	if r.Severity != SeverityCritical {
		t.Fatalf("severity = %s, want critical", r.Severity)
	}
	if len(r.Keywords) < 2 {
		t.Fatalf("keywords = %v, want both critical matches collected", r.Keywords)
	}
	if want := 3 * float64(len(r.Keywords)); r.Score != want {
		t.Fatalf("score = %v, want %v", r.Score, want)
	}
}

func TestClassifyNegativeAffectHeuristic(t *testing.T) {
	r := Classify("I am so sad and lonely and scared today")
	if r.Severity != SeverityLow {
		t.Fatalf("severity = %s, want low", r.Severity)
	}
	if r.Score != 0.5 {
		t.Fatalf("score = %v, want 0.5", r.Score)
	}
}

func TestClassifyNone(t *testing.T) {
	for _, msg := range []string{
		"what a lovely sunny day",
		"I am a bit sad about my exam", // single negative word, below threshold
		"",
	} {
		r := Classify(msg)
		if r.Severity != SeverityNone {
			t.Fatalf("Classify(%q).Severity = %s, want none", msg, r.Severity)
		}
		if r.IsCrisis {
			t.Fatalf("Classify(%q).IsCrisis = true, want false", msg)
		}
	}
}

func TestClassifyHindiKeywords(t *testing.T) {
	r := Classify("मैं आत्महत्या के बारे में सोच रहा हूं")
	if r.Severity != SeverityCritical {
		t.Fatalf("severity = %s, want critical", r.Severity)
	}
}

func TestScanSubstringContainment(t *testing.T) {
	// Deliberate over-match behavior: containment, not word boundaries.
	m := Scan("SUICIDE notes scared her")
	if m.Severity != SeverityCritical {
		t.Fatalf("severity = %s, want critical (case-insensitive containment)", m.Severity)
	}
}

func TestResponseForNone(t *testing.T) {
	if ResponseFor(SeverityNone) != nil {
		t.Fatal("expected nil payload for severity none")
	}
}
