package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

// predictionStatus is the provider's wire-level status vocabulary.
type predictionStatus string

const (
	statusStarting   predictionStatus = "starting"
	statusProcessing predictionStatus = "processing"
	statusSucceeded  predictionStatus = "succeeded"
	statusFailed     predictionStatus = "failed"
	statusCanceled   predictionStatus = "canceled"
)

// jobStatus maps the wire status onto the domain state machine once,
// at the decode boundary. Unknown statuses stay non-terminal.
func (s predictionStatus) jobStatus() chatmodel.JobStatus {
	switch s {
	case statusSucceeded:
		return chatmodel.JobStatusSucceeded
	case statusFailed:
		return chatmodel.JobStatusFailed
	case statusCanceled:
		return chatmodel.JobStatusCanceled
	default:
		return chatmodel.JobStatusProcessing
	}
}

// Prediction is the provider response to a submission or a poll,
// decoded exactly once. Downstream logic switches on the mapped status
// instead of probing optional JSON fields.
type Prediction struct {
	ID     string           `json:"id"`
	Status predictionStatus `json:"status"`
	Output PredictionOutput `json:"output"`
	Error  string           `json:"error"`
	URLs   PredictionURLs   `json:"urls"`
}

type PredictionURLs struct {
	Get    string `json:"get"`
	Cancel string `json:"cancel"`
}

// PredictionOutput accepts the two shapes the provider emits: a single
// string, or an ordered sequence of string fragments concatenated in
// order. Absent or null output decodes to the empty value.
type PredictionOutput struct {
	text    string
	present bool
}

func (o *PredictionOutput) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*o = PredictionOutput{}
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*o = PredictionOutput{text: single, present: true}
		return nil
	}

	var fragments []string
	if err := json.Unmarshal(data, &fragments); err == nil {
		*o = PredictionOutput{text: strings.Join(fragments, ""), present: true}
		return nil
	}

	return fmt.Errorf("unexpected output shape: %s", trimmed)
}

func (o PredictionOutput) Present() bool {
	return o.present
}

// Text returns the concatenated output with surrounding whitespace
// trimmed.
func (o PredictionOutput) Text() string {
	return strings.TrimSpace(o.text)
}

// predictionInput carries the generation parameters sent on submission.
type predictionInput struct {
	Prompt        string   `json:"prompt"`
	MaxNewTokens  int      `json:"max_new_tokens,omitempty"`
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"top_p,omitempty"`
	StopSequences []string `json:"stop_sequences,omitempty"`
	Image         string   `json:"image,omitempty"`
}

type predictionRequest struct {
	Input predictionInput `json:"input"`
}
