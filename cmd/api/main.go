package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kube-query-agent/config"
	_ "kube-query-agent/docs" // Swagger docs
	"kube-query-agent/internal/httpserver"
	clusterRepo "kube-query-agent/internal/query/repository/kubernetes"
	"kube-query-agent/pkg/llmprovider"
	"kube-query-agent/pkg/log"
)

// @title       Kube Query Agent API
// @description Natural-language, read-only query API for a Kubernetes cluster.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Kube Query Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Cluster accessor
	repo, err := clusterRepo.NewFromConfig(cfg.Kubernetes, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize cluster accessor: ", err)
		return
	}

	if err := repo.Ping(ctx); err != nil {
		logger.Warnf(ctx, "API server not reachable at startup: %v", err)
	} else {
		logger.Info(ctx, "Connected to cluster API server")
	}

	// 4. LLM gateway (optional fallback classifier)
	var llm *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM gateway disabled: %v", err)
		logger.Warn(ctx, "Queries outside the pattern rules will classify as unknown")
	} else {
		retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
		maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		llm = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTotalTimeout,
		}, logger)
		logger.Infof(ctx, "LLM gateway initialized with %d provider(s)", len(providers))
	}

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitPerMin:  cfg.HTTPServer.RateLimitPerMin,
		ClusterRepo:      repo,
		LLM:              llm,
		DefaultNamespace: cfg.Kubernetes.DefaultNamespace,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
