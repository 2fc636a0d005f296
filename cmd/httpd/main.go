package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/catnipandroid/blog-checker/internal/api"
	"github.com/catnipandroid/blog-checker/internal/config"
	"github.com/catnipandroid/blog-checker/internal/httpserver"
	"github.com/catnipandroid/blog-checker/internal/logger"
	"github.com/catnipandroid/blog-checker/internal/logging"
	"github.com/catnipandroid/blog-checker/internal/processor"
	"github.com/catnipandroid/blog-checker/internal/review"
	"github.com/catnipandroid/blog-checker/internal/telemetry"
)

func main() {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	defer func() { _ = log.Sync() }()

	appLog := logging.NewAdapter(log)
	metrics := telemetry.New(cfg.Service.Name)

	var classifier review.TextClassifier
	if cfg.LLM.APIKey != "" {
		classifier, err = review.NewOpenAIClassifier(review.OpenAIConfig{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
			RPS:     cfg.LLM.RPS,
		})
		if err != nil {
			log.Fatal("configure classifier", logger.Error(err))
		}
		log.Info("LLM review enabled", logger.String("model", cfg.LLM.Model))
	} else {
		log.Warn("OPENAI_API_KEY not set, LLM review disabled")
	}

	reviewer := review.NewReviewer(review.Instrument(classifier, metrics), appLog)
	proc := processor.New(reviewer, appLog, metrics)
	handler := api.NewHandler(proc, cfg.Review, appLog, cfg.Service.MaxUploadMB)

	server := httpserver.New(cfg.Service, log, func(router *gin.Engine) {
		api.RegisterRoutes(router, handler, cfg.Auth.JWTSecret, metrics)
	})

	if err := server.Run(context.Background()); err != nil {
		log.Fatal("server stopped", logger.Error(err))
	}
}
