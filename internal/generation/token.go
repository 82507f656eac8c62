package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/config"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/metrics"
	"github.com/sapatmohit/smart-farming-ai-agent/pkg/logger_i"
)

// TokenCache exchanges an account API key for a short-lived bearer token
// and shares it across concurrent requests. It is the only shared
// mutable state in the pipeline: reads happen under the read lock and a
// read that observes an unexpired token never triggers a refresh.
// Concurrent expirations may each refresh independently - the identity
// provider is idempotent to repeated issuance, so no single-flight.
type TokenCache struct {
	mu         sync.RWMutex
	token      string
	expiry     time.Time
	tokenURL   string
	httpClient *http.Client
	logger     *logger_i.Logger
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewTokenCache(tokenURL string) *TokenCache {
	return &TokenCache{
		tokenURL:   tokenURL,
		httpClient: &http.Client{Timeout: config.SubmitHTTPTimeout},
		logger:     logger_i.NewLogger("TokenCache"),
	}
}

// Bearer returns a valid token, refreshing through the identity
// endpoint when the cached one is absent or expired.
func (c *TokenCache) Bearer(ctx context.Context, apiKey string) (string, error) {
	c.mu.RLock()
	token, expiry := c.token, c.expiry
	c.mu.RUnlock()

	if token != "" && time.Now().Before(expiry) {
		return token, nil
	}

	return c.refresh(ctx, apiKey)
}

func (c *TokenCache) refresh(ctx context.Context, apiKey string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("token_exchange", time.Since(start)) }()

	form := url.Values{}
	form.Set("grant_type", "urn:ibm:params:oauth:grant-type:apikey")
	form.Set("apikey", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchanging api key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var decoded iamTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if decoded.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	expiry := time.Now().Add(time.Duration(decoded.ExpiresIn)*time.Second - config.TokenExpirySlack)

	c.mu.Lock()
	c.token = decoded.AccessToken
	c.expiry = expiry
	c.mu.Unlock()

	c.logger.Debug("Refreshed bearer token", "expiresIn", decoded.ExpiresIn)
	return decoded.AccessToken, nil
}
