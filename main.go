package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"loan-amortizer/config"
	httpLayer "loan-amortizer/http"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		defer redisCache.Close()
		cache = redisCache
		logger.Infof("Using redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	history := repository.NewCalculationRepositoryMemory()

	amortizationService := service.NewAmortizationService(history, cache, logger)
	comparisonService := service.NewComparisonService(amortizationService)

	amortizationHandler := httpLayer.NewAmortizationHandler(amortizationService)
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService)
	historyHandler := httpLayer.NewHistoryHandler(history)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	r := mux.NewRouter()
	r.Use(httpLayer.RateLimitMiddleware(rateLimiter))
	r.HandleFunc("/amortization/schedule", amortizationHandler.GenerateSchedule).Methods("POST")
	r.HandleFunc("/amortization/schedule/export", amortizationHandler.ExportSchedule).Methods("POST")
	r.HandleFunc("/amortization/compare", comparisonHandler.CompareExtraPayment).Methods("POST")
	r.HandleFunc("/amortization/history", historyHandler.RecentCalculations).Methods("GET")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Server failed: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
