package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/config"
	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/metrics"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/prompt"
	"github.com/sapatmohit/smart-farming-ai-agent/pkg/logger_i"
)

// ErrTimedOut means the polling budget ran out before the provider
// reached a terminal state.
var ErrTimedOut = errors.New("generation timed out")

var errEmptyOutput = errors.New("prediction succeeded with no output")

// Retired model identifiers are rewritten to the current default. Static
// compatibility shim for configs that still name the old deployments.
var deprecatedModels = map[string]string{
	"ibm-granite/granite-13b-chat-v2":      config.TextModelID,
	"ibm-granite/granite-3.0-8b-instruct":  config.TextModelID,
	"ibm-granite/granite-8b-code-instruct": config.TextModelID,
}

// Request carries everything Generate needs: the assembled prompt for
// the provider, plus the raw query and retrieval context so a failure
// can degrade into a grounded fallback answer.
type Request struct {
	Prompt         string
	Query          string
	Context        []string
	TargetLanguage chatmodel.LanguageCode
	Image          string
}

// Provider is what the orchestrator sees. Generate never surfaces an
// upstream failure - it degrades to fallback text; the only error it
// returns is ErrMissingCredential. Run exposes the raw submit/poll path
// for callers that want to handle failure themselves.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
	Run(ctx context.Context, promptText string, image string) (string, error)
}

// Client talks to the asynchronous prediction API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       *TokenCache
	apiToken     string
	apiKey       string
	textModel    string
	visionModel  string
	pollInterval time.Duration
	maxPolls     int
	logger       *logger_i.Logger
}

func NewClient() *Client {
	return &Client{
		baseURL:      config.ProviderBaseURL,
		httpClient:   &http.Client{Timeout: config.SubmitHTTPTimeout},
		tokens:       NewTokenCache(config.IAMTokenURL),
		apiToken:     config.ReplicateAPIToken(),
		apiKey:       config.IBMCloudAPIKey(),
		textModel:    config.TextModelID,
		visionModel:  config.VisionModelID,
		pollInterval: config.PollInterval,
		maxPolls:     config.MaxPollAttempts,
		logger:       logger_i.NewLogger("GenerationClient"),
	}
}

// ClientOptions override provider endpoints and pacing, mainly for tests.
type ClientOptions struct {
	BaseURL      string
	TokenURL     string
	APIToken     string
	APIKey       string
	TextModel    string
	VisionModel  string
	PollInterval time.Duration
	MaxPolls     int
}

func NewClientWithOptions(opts ClientOptions) *Client {
	c := NewClient()
	if opts.BaseURL != "" {
		c.baseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.TokenURL != "" {
		c.tokens = NewTokenCache(opts.TokenURL)
	}
	c.apiToken = opts.APIToken
	c.apiKey = opts.APIKey
	if opts.TextModel != "" {
		c.textModel = opts.TextModel
	}
	if opts.VisionModel != "" {
		c.visionModel = opts.VisionModel
	}
	if opts.PollInterval > 0 {
		c.pollInterval = opts.PollInterval
	}
	if opts.MaxPolls > 0 {
		c.maxPolls = opts.MaxPolls
	}
	return c
}

// Generate resolves a prompt to answer text, always. Any upstream
// problem short of a missing credential is absorbed into a fallback or
// timeout message.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	text, err := c.Run(ctx, req.Prompt, req.Image)
	if err == nil {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed, nil
		}
		err = errEmptyOutput
	}

	if errors.Is(err, chatmodel.ErrMissingCredential) {
		return "", err
	}
	if ctx.Err() != nil {
		// the hosting transport cancelled the request - nobody is waiting
		return "", ctx.Err()
	}
	if errors.Is(err, ErrTimedOut) {
		metrics.IncrementFallback("timeout")
		return TimeoutMessage(req.TargetLanguage), nil
	}

	c.logger.Warn("Remote generation degraded to fallback", "error", err)
	metrics.IncrementFallback("upstream")
	return ComposeFallback(req.Query, req.Context, req.TargetLanguage), nil
}

// Run submits a prediction and drives it to a terminal state, returning
// raw errors. The translation endpoint uses this path directly and
// surfaces failures to its caller.
func (c *Client) Run(ctx context.Context, promptText string, image string) (string, error) {
	auth, err := c.authHeader(ctx)
	if err != nil {
		return "", err
	}

	job := &chatmodel.GenerationJob{
		Prompt:  promptText,
		ModelID: c.modelFor(image != ""),
		Status:  chatmodel.JobStatusSubmitted,
	}

	pred, err := c.submit(ctx, auth, job.ModelID, promptText, image)
	if err != nil {
		return "", fmt.Errorf("submitting prediction: %w", err)
	}
	job.PollURL = pred.URLs.Get

	return c.resolve(ctx, auth, job, pred)
}

// resolve handles immediate terminal responses and otherwise enters the
// polling loop.
func (c *Client) resolve(ctx context.Context, auth string, job *chatmodel.GenerationJob, pred *Prediction) (string, error) {
	switch pred.Status.jobStatus() {
	case chatmodel.JobStatusSucceeded:
		job.Status = chatmodel.JobStatusSucceeded
		job.Output = pred.Output.Text()
		if job.Output == "" {
			return "", errEmptyOutput
		}
		return job.Output, nil

	case chatmodel.JobStatusFailed, chatmodel.JobStatusCanceled:
		job.Status = pred.Status.jobStatus()
		return "", fmt.Errorf("prediction %s: %s", pred.Status, pred.Error)

	default:
		if job.PollURL == "" {
			return "", fmt.Errorf("prediction %s pending but no poll url given", pred.ID)
		}
		job.Status = chatmodel.JobStatusProcessing
		return c.pollUntilTerminal(ctx, auth, job)
	}
}

// pollUntilTerminal re-fetches prediction status on a fixed interval
// until a terminal state, the iteration cap, or context cancellation.
// Transport failures on individual polls are logged and do not abort
// the loop - only the cap terminates an unresponsive provider.
func (c *Client) pollUntilTerminal(ctx context.Context, auth string, job *chatmodel.GenerationJob) (string, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= c.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			job.Status = chatmodel.JobStatusCanceled
			return "", ctx.Err()
		case <-ticker.C:
		}

		pred, err := c.poll(ctx, auth, job.PollURL)
		if err != nil {
			c.logger.Warn("Poll request failed, continuing", "attempt", attempt, "error", err)
			continue
		}

		switch pred.Status.jobStatus() {
		case chatmodel.JobStatusSucceeded:
			metrics.ObservePollIterations(attempt)
			job.Status = chatmodel.JobStatusSucceeded
			job.Output = pred.Output.Text()
			if job.Output == "" {
				return "", errEmptyOutput
			}
			return job.Output, nil

		case chatmodel.JobStatusFailed, chatmodel.JobStatusCanceled:
			metrics.ObservePollIterations(attempt)
			job.Status = pred.Status.jobStatus()
			return "", fmt.Errorf("prediction %s: %s", pred.Status, pred.Error)

		default:
			job.Status = chatmodel.JobStatusProcessing
		}
	}

	metrics.ObservePollIterations(c.maxPolls)
	job.Status = chatmodel.JobStatusTimedOut
	return "", ErrTimedOut
}

func (c *Client) submit(ctx context.Context, auth string, modelID string, promptText string, image string) (*Prediction, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("generation_submit", time.Since(start)) }()

	body := predictionRequest{
		Input: predictionInput{
			Prompt:       promptText,
			MaxNewTokens: config.MaxNewTokens,
			Temperature:  config.ModelTemperature,
			TopP:         config.ModelTopP,
			Image:        image,
		},
	}
	if image == "" {
		// keep the instruct model from hallucinating the next user turn
		body.Input.StopSequences = []string{prompt.UserTurnMarker}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling prediction request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s/predictions", c.baseURL, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating submit request: %w", err)
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("Content-Type", "application/json")
	// ask the provider to hold the connection until the prediction is
	// done when it can - saves the whole poll loop on warm models
	req.Header.Set("Prefer", "wait")

	return c.doPrediction(req)
}

func (c *Client) poll(ctx context.Context, auth string, pollURL string) (*Prediction, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("generation_poll", time.Since(start)) }()

	pollCtx, cancel := context.WithTimeout(ctx, config.PollHTTPTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pollCtx, http.MethodGet, pollURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating poll request: %w", err)
	}
	req.Header.Set("Authorization", auth)

	return c.doPrediction(req)
}

func (c *Client) doPrediction(req *http.Request) (*Prediction, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("decoding prediction: %w", err)
	}
	return &pred, nil
}

func (c *Client) authHeader(ctx context.Context) (string, error) {
	if c.apiToken != "" {
		return "Bearer " + c.apiToken, nil
	}
	if c.apiKey != "" {
		token, err := c.tokens.Bearer(ctx, c.apiKey)
		if err != nil {
			return "", fmt.Errorf("acquiring bearer token: %w", err)
		}
		return "Bearer " + token, nil
	}
	return "", chatmodel.ErrMissingCredential
}

// modelFor: an image payload forces the vision model, everything else
// goes to the configured text model after the deprecation rewrite.
func (c *Client) modelFor(hasImage bool) string {
	if hasImage {
		return c.visionModel
	}
	if current, ok := deprecatedModels[c.textModel]; ok {
		return current
	}
	return c.textModel
}
