package respond

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed locales
var localesFS embed.FS

// Intent shortcuts that bypass the generative call entirely.
type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentGratitude    Intent = "gratitude"
	IntentGoodbye      Intent = "goodbye"
	IntentConversation Intent = "conversation"
)

var (
	greetingRe  = regexp.MustCompile(`(?i)^(hi|hello|hey|namaste|hola)\b`)
	gratitudeRe = regexp.MustCompile(`(?i)(thank|thanks|grateful|appreciate)`)
	goodbyeRe   = regexp.MustCompile(`(?i)(bye|goodbye|see you|gotta go)`)

	scriptGreetings  = []string{"नमस्ते", "ನಮಸ್ಕಾರ", "ஹாய்", "வணக்கம்", "హాయ్", "നമസ്തേ"}
	scriptGratitudes = []string{"धन्यवाद", "ಧನ್ಯವಾದ", "நன்றி", "ధన్యవాదాలు", "നന്ദി"}
	scriptGoodbyes   = []string{"बाय", "ಬೈ", "பை", "బై", "ബൈ"}
)

// DetectIntent recognizes greeting/gratitude/goodbye over a small
// multilingual keyword set; everything else is a conversation turn.
func DetectIntent(message string) Intent {
	m := strings.TrimSpace(message)
	if greetingRe.MatchString(m) || hasAnyPrefix(m, scriptGreetings) {
		return IntentGreeting
	}
	if gratitudeRe.MatchString(m) || containsAny(m, scriptGratitudes) {
		return IntentGratitude
	}
	if goodbyeRe.MatchString(m) || containsAny(m, scriptGoodbyes) {
		return IntentGoodbye
	}
	return IntentConversation
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type locale struct {
	Canned  map[string]string `yaml:"canned"`
	Intents map[string]string `yaml:"intents"`
}

// Catalog holds per-language canned replies and intent replies, loaded from
// embedded YAML locale files.
type Catalog struct {
	locales map[Language]locale
}

// NewCatalog reads locales/<code>.yaml for every supported language from the
// given filesystem.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{locales: make(map[Language]locale)}
	for _, lang := range SupportedLanguages() {
		file := path.Join("locales", fmt.Sprintf("%s.yaml", lang))
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", file, err)
		}
		var loc locale
		if err := yaml.Unmarshal(data, &loc); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", file, err)
		}
		c.locales[lang] = loc
	}
	return c, nil
}

// DefaultCatalog loads the catalog bundled with the binary.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(localesFS)
}

// Canned returns the exact-match canned reply for (language, message), or ""
// when there is none. Matching is lowercase+trim exact, never substring.
func (c *Catalog) Canned(lang Language, message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	return c.locales[lang].Canned[normalized]
}

// IntentReply returns the fixed templated reply for an intent, falling back
// to the English locale when the language has no entry.
func (c *Catalog) IntentReply(lang Language, intent Intent) string {
	if r := c.locales[lang].Intents[string(intent)]; r != "" {
		return r
	}
	return c.locales[LangEnglish].Intents[string(intent)]
}

// ContextualGreeting picks the session-opening greeting by time of day.
func ContextualGreeting(now time.Time) string {
	var timeGreeting string
	switch h := now.Hour(); {
	case h < 12:
		timeGreeting = "Good morning"
	case h < 17:
		timeGreeting = "Good afternoon"
	case h < 21:
		timeGreeting = "Good evening"
	default:
		timeGreeting = "Hello"
	}
	return timeGreeting + "! I'm here to listen. How are you feeling today?"
}
