package api

// requests---------------------

type ChatRequest struct {
	Query    string `json:"query" validate:"required" example:"When should I sow wheat?"`
	Language string `json:"language,omitempty" example:"hi"`
	Image    string `json:"image,omitempty"` //base64 data URI for crop photos
}

type TranslateRequest struct {
	Text       string `json:"text" validate:"required"`
	TargetLang string `json:"target_lang" example:"mr"`
}

// responses--------------------

type ChatResponse struct {
	Answer           string   `json:"answer"`
	Sources          []string `json:"sources"`
	Confidence       string   `json:"confidence" example:"high"`
	DetectedLanguage string   `json:"detected_language" example:"en"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

type ErrorBody struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"query is empty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
