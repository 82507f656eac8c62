package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/adapter"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// can't send a clean status code at this point, just log it
		logRH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(httpCode, message))
}

func validateContext(ctx context.Context) bool {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		logRH.With("traceId", trace)
	}
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

func traceFrom(ctx context.Context) string {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return trace
	}
	return ""
}
