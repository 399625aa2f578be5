package model

import "time"

// Mood levels, ordered from lowest to highest. The ordinal value (1..5) feeds
// the first-half/second-half trend comparison.
type Mood string

const (
	MoodVerySad   Mood = "very_sad"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodVeryHappy Mood = "very_happy"
)

// moodOrder doubles as the canonical enum order for tie-breaking.
var moodOrder = []Mood{MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy}

// Value returns the 1..5 ordinal of a mood, 0 for an unknown mood.
func (m Mood) Value() int {
	for i, mm := range moodOrder {
		if m == mm {
			return i + 1
		}
	}
	return 0
}

func (m Mood) Valid() bool { return m.Value() != 0 }

func Moods() []Mood { return moodOrder }

// MoodEntry is one append-only mood log record for a session.
type MoodEntry struct {
	SessionID  string    `json:"-"`
	Mood       Mood      `json:"mood"`
	Intensity  int       `json:"intensity"` // 1..10
	Note       string    `json:"note"`
	Activities []string  `json:"activities"`
	Triggers   []string  `json:"triggers"`
	Timestamp  time.Time `json:"timestamp"`
}

// MoodStatistics summarizes a slice of mood entries.
type MoodStatistics struct {
	AverageIntensity  float64      `json:"averageIntensity"`
	MoodDistribution  map[Mood]int `json:"moodDistribution"`
	MostCommonMood    Mood         `json:"mostCommonMood,omitempty"`
	Trend             string       `json:"trend"` // improving | declining | stable | neutral
	CommonTriggers    []string     `json:"commonTriggers,omitempty"`
	HelpfulActivities []string     `json:"helpfulActivities,omitempty"`
	TotalEntries      int          `json:"totalEntries"`
}
