package chatModel

import "errors"

type LanguageCode string
type Confidence string
type JobStatus string

const (
	LanguageEnglish LanguageCode = "en"
	LanguageHindi   LanguageCode = "hi"
	LanguageMarathi LanguageCode = "mr"

	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"

	JobStatusSubmitted  JobStatus = "Submitted"
	JobStatusProcessing JobStatus = "Processing"
	JobStatusSucceeded  JobStatus = "Succeeded"
	JobStatusFailed     JobStatus = "Failed"
	JobStatusCanceled   JobStatus = "Canceled"
	JobStatusTimedOut   JobStatus = "TimedOut"
)

var (
	// ErrEmptyQuery is a client input problem, rejected before any network call
	ErrEmptyQuery = errors.New("query is empty")

	// ErrMissingCredential means no provider credential is configured.
	// This is the only upstream condition surfaced to the caller as an error.
	ErrMissingCredential = errors.New("no generation credential configured")
)

// ChatQuery is request scoped - one owner, never shared across requests
type ChatQuery struct {
	Query            string
	TargetLanguage   LanguageCode
	Image            string //base64 data URI, optional
	DetectedLanguage LanguageCode
	Contents         []string
	Sources          []string
	Confidence       Confidence
	Answer           string
	TraceId          string
}

// GenerationJob tracks one remote prediction, never reused across requests
type GenerationJob struct {
	Prompt  string
	ModelID string
	PollURL string
	Status  JobStatus
	Output  string
}

func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusSucceeded, JobStatusFailed, JobStatusCanceled, JobStatusTimedOut:
		return true
	}
	return false
}
