package respond

// Language is the closed set of languages the router can detect and reply in.
type Language string

const (
	LangEnglish   Language = "en"
	LangHindi     Language = "hi"
	LangTamil     Language = "ta"
	LangKannada   Language = "kn"
	LangTelugu    Language = "te"
	LangMalayalam Language = "ml"
)

// Languages in detection priority order (English is the default, not
// detected).
var detectedLanguages = []struct {
	lang   Language
	lo, hi rune
}{
	{LangHindi, 0x0900, 0x097F},     // Devanagari
	{LangTamil, 0x0B80, 0x0BFF},     // Tamil
	{LangKannada, 0x0C80, 0x0CFF},   // Kannada
	{LangTelugu, 0x0C00, 0x0C7F},    // Telugu
	{LangMalayalam, 0x0D00, 0x0D7F}, // Malayalam
}

// SupportedLanguages returns every language the router carries locale data
// for, default language first.
func SupportedLanguages() []Language {
	out := []Language{LangEnglish}
	for _, d := range detectedLanguages {
		out = append(out, d.lang)
	}
	return out
}

// DetectLanguage sniffs the writing script of the message through Unicode
// block checks; the first block with any hit wins. Heuristic only: Latin
// text in any language comes back as English.
func DetectLanguage(text string) Language {
	for _, d := range detectedLanguages {
		for _, r := range text {
			if r >= d.lo && r <= d.hi {
				return d.lang
			}
		}
	}
	return LangEnglish
}
