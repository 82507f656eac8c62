package adapter

import (
	"github.com/sapatmohit/smart-farming-ai-agent/internal/api"
	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

func ToChatResponse(query chatmodel.ChatQuery) api.ChatResponse {
	sources := query.Sources
	if sources == nil {
		// keep the JSON contract stable: [] rather than null
		sources = []string{}
	}

	return api.ChatResponse{
		Answer:           query.Answer,
		Sources:          sources,
		Confidence:       string(query.Confidence),
		DetectedLanguage: string(query.DetectedLanguage),
	}
}

func ToTranslateResponse(translated string) api.TranslateResponse {
	return api.TranslateResponse{TranslatedText: translated}
}

func BadRequest(code int, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.ErrorBody{
			Code:    code,
			Message: message,
		},
	}
}
