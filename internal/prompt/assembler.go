package prompt

import (
	"fmt"
	"strings"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

// Template picks between the two prompt shapes the provider models
// expect. The vision models take one continuous string, the instruct
// models take explicit dialogue turns.
type Template int

const (
	TemplateInstruct Template = iota
	TemplateVision
)

const persona = "You are KrishiMitra, an AI assistant for Indian farmers. " +
	"You give practical, safe advice about crops, weather, pests, soil and market prices. " +
	"Never recommend banned pesticides or unsafe chemical dosages. " +
	"Keep answers short, use simple words, and prefer numbered steps for instructions. " +
	"If you are not sure about something, say so and suggest contacting a local agriculture officer."

const contextHeader = "CONTEXT FROM KNOWLEDGE BASE:"

// AssistantTurnMarker signals to the instruct model where generation
// continues. It doubles as a stop sequence boundary for the user turn.
const AssistantTurnMarker = "Assistant:"

const UserTurnMarker = "User:"

var directives = map[chatmodel.LanguageCode]string{
	chatmodel.LanguageHindi:   "Respond in Hindi (Devanagari script).",
	chatmodel.LanguageMarathi: "Respond in Marathi (Devanagari script).",
	chatmodel.LanguageEnglish: "Respond in English.",
}

// TemplateFor maps the presence of an image payload onto a template.
func TemplateFor(hasImage bool) Template {
	if hasImage {
		return TemplateVision
	}
	return TemplateInstruct
}

// Build assembles the full prompt for the remote model. Pure string
// construction, no error conditions.
func Build(query string, context []string, targetLang chatmodel.LanguageCode, template Template) string {
	directive := directiveFor(targetLang)
	contextBlock := buildContextBlock(context)

	if template == TemplateVision {
		// continuous prompt, the vision model rejects dialogue turn markers
		var sb strings.Builder
		sb.WriteString(persona)
		sb.WriteString("\n\n")
		sb.WriteString(directive)
		if contextBlock != "" {
			sb.WriteString("\n\n")
			sb.WriteString(contextBlock)
		}
		sb.WriteString("\n\n")
		sb.WriteString(query)
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString("\n\n")
	sb.WriteString(UserTurnMarker)
	sb.WriteString(" ")
	if contextBlock != "" {
		sb.WriteString(contextBlock)
		sb.WriteString("\n\n")
	}
	sb.WriteString(query)
	sb.WriteString("\n")
	sb.WriteString(directive)
	sb.WriteString("\n\n")
	sb.WriteString(AssistantTurnMarker)
	return sb.String()
}

// BuildTranslation is the prompt for the /translate endpoint. The same
// generation path is reused with an empty context and a narrow
// instruction so the model returns nothing but the translated text.
func BuildTranslation(text string, targetLang chatmodel.LanguageCode) string {
	name := "English"
	switch targetLang {
	case chatmodel.LanguageHindi:
		name = "Hindi"
	case chatmodel.LanguageMarathi:
		name = "Marathi"
	}
	return fmt.Sprintf("Translate the following text to %s. Return ONLY the translated text, no explanations.\n\nText: %s", name, text)
}

func directiveFor(lang chatmodel.LanguageCode) string {
	if d, ok := directives[lang]; ok {
		return d
	}
	return directives[chatmodel.LanguageEnglish]
}

// buildContextBlock delimits retrieved grounding. An empty context gets
// no block at all, not an empty one.
func buildContextBlock(context []string) string {
	if len(context) == 0 {
		return ""
	}
	return contextHeader + "\n" + strings.Join(context, "\n\n")
}
