package respond

const baseInstruction = `You are a compassionate mental wellness companion for Indian youth aged 15-25.
Listen without judgment, validate feelings, and keep replies short and warm.
Never diagnose conditions or prescribe medication.
If the user mentions self-harm or suicide, gently share Indian crisis helplines
(Vandrevala Foundation 1860-2662-345, AASRA 91-9820466726) and encourage them
to reach out to a trusted adult or professional.`

var languageInstructions = map[Language]string{
	LangEnglish:   baseInstruction + "\nRespond only in English.",
	LangHindi:     baseInstruction + "\nRespond only in Hindi (Devanagari script).",
	LangTamil:     baseInstruction + "\nRespond only in Tamil.",
	LangKannada:   baseInstruction + "\nRespond only in Kannada.",
	LangTelugu:    baseInstruction + "\nRespond only in Telugu.",
	LangMalayalam: baseInstruction + "\nRespond only in Malayalam.",
}

// SystemInstruction returns the system prompt for a detected language. The
// language set is closed, so anything unknown falls back to English.
func SystemInstruction(lang Language) string {
	if instr, ok := languageInstructions[lang]; ok {
		return instr
	}
	return languageInstructions[LangEnglish]
}
