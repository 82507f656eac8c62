package generation

import (
	"fmt"
	"strings"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

// Exact-match greeting phrases, compared case-insensitive after trimming
var greetingPhrases = map[string]struct{}{
	"hello":        {},
	"hi":           {},
	"hey":          {},
	"namaste":      {},
	"namaskar":     {},
	"ram ram":      {},
	"sat sri akal": {},
	"greetings":    {},
}

type fallbackStrings struct {
	greeting     string
	acknowledge  string // fmt verb: the original query
	contextIntro string
	contact      string
	apology      string
	timeout      string
}

var fallbackLocales = map[chatmodel.LanguageCode]fallbackStrings{
	chatmodel.LanguageEnglish: {
		greeting: "Hello! I am KrishiMitra, your AI farming assistant. " +
			"Ask me about crops, weather, pest control, soil or mandi prices.",
		acknowledge: "You asked: \"%s\". I could not prepare a reliable answer for this right now.",
		contextIntro: "I could not generate a full answer right now, but here is the relevant " +
			"information from my knowledge base:",
		contact: "For expert help, please call the Kisan Call Center (toll free): 1800-180-1551, " +
			"or visit your nearest Krishi Vigyan Kendra / agriculture extension office.",
		apology: "Sorry for the inconvenience.",
		timeout: "Your answer is taking too long to generate. Please try again in a moment.",
	},
	chatmodel.LanguageHindi: {
		greeting: "नमस्ते! मैं कृषिमित्र हूँ, आपका AI खेती सहायक। " +
			"फसल, मौसम, कीट नियंत्रण, मिट्टी या मंडी भाव के बारे में पूछें।",
		acknowledge:  "आपने पूछा: \"%s\"। अभी मैं इसका भरोसेमंद उत्तर तैयार नहीं कर पाया।",
		contextIntro: "अभी पूरा उत्तर नहीं बन पाया, लेकिन मेरे ज्ञान भंडार से यह जानकारी आपके काम आ सकती है:",
		contact: "विशेषज्ञ सहायता के लिए किसान कॉल सेंटर (टोल फ्री): 1800-180-1551 पर कॉल करें, " +
			"या अपने नज़दीकी कृषि विज्ञान केंद्र / कृषि विस्तार कार्यालय जाएँ।",
		apology: "असुविधा के लिए क्षमा करें।",
		timeout: "उत्तर बनने में अधिक समय लग रहा है। कृपया थोड़ी देर बाद पुनः प्रयास करें।",
	},
	chatmodel.LanguageMarathi: {
		greeting: "नमस्कार! मी कृषिमित्र आहे, तुमचा AI शेती सहाय्यक। " +
			"पीक, हवामान, कीड नियंत्रण, माती किंवा बाजार भावाबद्दल विचारा।",
		acknowledge:  "तुम्ही विचारले: \"%s\"। सध्या मी याचे विश्वासार्ह उत्तर तयार करू शकलो नाही।",
		contextIntro: "सध्या पूर्ण उत्तर तयार झाले नाही, पण माझ्या ज्ञान भांडारातील ही माहिती उपयोगी पडू शकते:",
		contact: "तज्ज्ञांच्या मदतीसाठी किसान कॉल सेंटर (टोल फ्री): 1800-180-1551 वर कॉल करा, " +
			"किंवा जवळच्या कृषी विज्ञान केंद्राला / कृषी विस्तार कार्यालयाला भेट द्या।",
		apology: "गैरसोयीबद्दल क्षमस्व।",
		timeout: "उत्तर तयार होण्यास जास्त वेळ लागत आहे। कृपया थोड्या वेळाने पुन्हा प्रयत्न करा।",
	},
}

func localeFor(lang chatmodel.LanguageCode) fallbackStrings {
	if s, ok := fallbackLocales[lang]; ok {
		return s
	}
	return fallbackLocales[chatmodel.LanguageEnglish]
}

// IsGreeting reports whether the query is one of the fixed greeting
// phrases.
func IsGreeting(query string) bool {
	_, ok := greetingPhrases[strings.ToLower(strings.TrimSpace(query))]
	return ok
}

// ComposeFallback builds the deterministic degraded answer used when
// remote generation cannot produce one. Greetings short-circuit to a
// fixed introduction; otherwise the retrieved context is surfaced
// verbatim when present, and a human-assistance contact block is
// appended either way.
func ComposeFallback(query string, context []string, lang chatmodel.LanguageCode) string {
	s := localeFor(lang)

	if IsGreeting(query) {
		return s.greeting
	}

	if len(context) == 0 {
		return fmt.Sprintf(s.acknowledge, query) + "\n\n" + s.contact + "\n\n" + s.apology
	}

	return s.contextIntro + "\n\n" + strings.Join(context, "\n\n") + "\n\n" + s.contact
}

// TimeoutMessage is returned when the polling budget is exhausted
// without a terminal state. Not an error - the user is asked to retry.
func TimeoutMessage(lang chatmodel.LanguageCode) string {
	return localeFor(lang).timeout
}
