// @title           Smart Farming AI Agent API
// @version         1.0
// @description     Grounded farming Q&A for Indian farmers with language detection and resilient remote generation.

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/cache"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/config"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/generation"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/handlers"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/knowledge"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/orchestrator"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/retrieval"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/server"
	"github.com/sapatmohit/smart-farming-ai-agent/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	logger.Info("Knowledge corpus loaded", "documents", len(knowledge.All()))

	var answerCache cache.AnswerCache
	if redisCache := cache.GetRedisAnswerCache(serviceContext); redisCache != nil {
		answerCache = redisCache
	} else {
		logger.Error("Redis is offline, using in-memory answer cache")
		answerCache = cache.InitInMemoryAnswerCache()
	}

	if config.ReplicateAPIToken() == "" && config.IBMCloudAPIKey() == "" {
		logger.Warn("No provider credential configured - chat requests will fail until REPLICATE_API_TOKEN or IBM_CLOUD_API_KEY is set")
	}

	generationClient := generation.NewClient()
	chatService := orchestrator.NewService(retrieval.Default(), generationClient, answerCache)

	handlers.InitHandlers(chatService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
