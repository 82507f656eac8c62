package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second //long enough to cover a full polling budget
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":8080"

	//retrieval - weights are empirically tuned, keep in sync with the ranking tests
	RetrievalTopK           = 3
	TitleWeight             = 2.0
	CategoryWeight          = 1.5
	ConfidenceHighSources   = 3
	ConfidenceMediumSources = 1

	//generation provider
	ProviderBaseURL   = "https://api.replicate.com"
	IAMTokenURL       = "https://iam.cloud.ibm.com/identity/token"
	TextModelID       = "ibm-granite/granite-3.3-8b-instruct"
	VisionModelID     = "ibm-granite/granite-vision-3.2-2b"
	MaxNewTokens      = 500
	ModelTemperature  = 0.7
	ModelTopP         = 0.9
	PollInterval      = 1 * time.Second
	MaxPollAttempts   = 90 //sized for provider cold starts, ~90s wall clock
	SubmitHTTPTimeout = 30 * time.Second
	PollHTTPTimeout   = 10 * time.Second

	//token cache - refresh a little before the provider expiry to avoid 401 races
	TokenExpirySlack = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisAnswerCacheDB = 0

	RedisAnswerCacheTTL = 1 * time.Hour
)

// secrets and deploy-time overrides stay out of the const block

func ReplicateAPIToken() string {
	return os.Getenv("REPLICATE_API_TOKEN")
}

func IBMCloudAPIKey() string {
	return os.Getenv("IBM_CLOUD_API_KEY")
}

func AuthToken() string {
	return os.Getenv("AUTH_TOKEN")
}

func NoAuthBypass() bool {
	return os.Getenv("AUTH_TOKEN") == ""
}
