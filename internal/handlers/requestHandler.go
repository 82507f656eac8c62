package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/adapter"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/adapter/utils"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/api"
	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/knowledge"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/metrics"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/orchestrator"
	"github.com/sapatmohit/smart-farming-ai-agent/pkg/logger_i"
)

var (
	chatService orchestrator.Service
	once        sync.Once
	logRH       *logger_i.Logger
)

func InitHandlers(service orchestrator.Service) {
	once.Do(func() {
		chatService = service
		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting request handlers")
	})
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ChatHandler godoc
// @Summary      Answer a farming question
// @Description  Detects the query language, grounds the question in the knowledge base, and returns a generated (or fallback) answer with sources and confidence.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest  true  "Query, optional target language and crop image"
// @Success      200      {object}  api.ChatResponse
// @Failure      400      {object}  api.ErrorResponse "Empty query or malformed body"
// @Failure      500      {object}  api.ErrorResponse "Provider credential not configured"
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", "addr", request.RemoteAddr)
		return
	}

	start := time.Now()
	outcome := "ok"
	defer func() { metrics.CaptureChatMetrics(outcome, time.Since(start)) }()

	var requestData api.ChatRequest
	defer closeBody(request.Body)
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad Chat Request", "error", err)
		outcome = "bad_request"
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	query := chatmodel.ChatQuery{
		Query:          requestData.Query,
		TargetLanguage: chatmodel.LanguageCode(requestData.Language),
		Image:          requestData.Image,
		TraceId:        traceFrom(request.Context()),
	}

	result, err := chatService.ProcessQuery(request.Context(), query)
	if err != nil {
		outcome = writeChatError(w, request, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToChatResponse(result))
}

// TranslateHandler godoc
// @Summary      Translate text
// @Description  Translates text to the target language through the generation provider. Unlike /chat, upstream failure surfaces as an error.
// @Tags         Translation
// @Accept       json
// @Produce      json
// @Param        request  body      api.TranslateRequest  true  "Text and target language code (en|hi|mr)"
// @Success      200      {object}  api.TranslateResponse
// @Failure      400      {object}  api.ErrorResponse "Empty text"
// @Failure      500      {object}  api.ErrorResponse "Translation failed"
// @Router       /translate [post]
func TranslateHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", "addr", request.RemoteAddr)
		return
	}

	var requestData api.TranslateRequest
	defer closeBody(request.Body)
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad Translate Request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	translated, err := chatService.Translate(request.Context(), requestData.Text, chatmodel.LanguageCode(requestData.TargetLang))
	if err != nil {
		if errors.Is(err, chatmodel.ErrEmptyQuery) {
			WriteErrorResponse(w, http.StatusBadRequest, "text is empty")
			return
		}
		logRH.Error("Translation failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Translation failed")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToTranslateResponse(translated))
}

// KnowledgeHandler godoc
// @Summary      Browse the knowledge base by category
// @Description  Returns every corpus document under a category tag (crops, weather, pest_control, market_prices, soil).
// @Tags         Knowledge
// @Produce      json
// @Param        category  path      string  true  "Category tag"
// @Success      200       {array}   knowledge.Document
// @Failure      404       {object}  api.ErrorResponse "Unknown category"
// @Router       /knowledge/{category} [get]
func KnowledgeHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	category := utils.GetChiURLParam(request, "category")
	docs := knowledge.ByCategory(category)
	if len(docs) == 0 {
		WriteErrorResponse(w, http.StatusNotFound, "unknown category: "+category)
		return
	}

	writeJsonResponse(w, http.StatusOK, docs)
}

func writeChatError(w http.ResponseWriter, request *http.Request, err error) string {
	switch {
	case errors.Is(err, chatmodel.ErrEmptyQuery):
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return "bad_request"
	case errors.Is(err, chatmodel.ErrMissingCredential):
		logRH.Error("Provider credential missing - operator fix required")
		WriteErrorResponse(w, http.StatusInternalServerError, "generation service is not configured")
		return "misconfigured"
	default:
		// request context died mid-pipeline, nobody is listening anymore
		logRH.Warn("Chat request aborted", "error", err, "addr", request.RemoteAddr)
		return "aborted"
	}
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body reader", "error", err)
	}
}
