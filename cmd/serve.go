package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/shenikar/incident_map_dashboard/docs"
	v1 "github.com/shenikar/incident_map_dashboard/internal/handler/http/v1"
	"github.com/shenikar/incident_map_dashboard/internal/llm"
	"github.com/shenikar/incident_map_dashboard/internal/pdf"
	"github.com/shenikar/incident_map_dashboard/internal/repository"
	"github.com/shenikar/incident_map_dashboard/internal/seed"
	"github.com/shenikar/incident_map_dashboard/internal/service"
	redisclient "github.com/shenikar/incident_map_dashboard/pkg/redis"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	dbpool, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dbpool.Close()

	// Redis необязателен: без него кэш локаций отключен
	locationCache := repository.NewNoopLocationCache()
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		locationCache = repository.NewRedisLocationCache(redisClient, cfg.LocationsCacheTTL)
	}

	// Инициализация репозиториев
	locationRepo := repository.NewLocationRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	statsRepo := repository.NewStatsRepository(dbpool)

	// Сводки через LLM только при наличии ключа
	var summarizer service.Summarizer
	if cfg.OpenAIAPIKey != "" {
		summarizer = llm.NewSummarizer(cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
	} else {
		log.Warn("OPENAI_API_KEY is not set, summaries use statistical fallback")
	}

	renderer := pdf.NewRenderer(cfg.ChromePath, cfg.PDFTimeout, log)
	defer renderer.Close()

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, locationRepo, locationCache, cfg, log)
	locationService := service.NewLocationService(locationRepo, locationCache, log)
	adminService := service.NewAdminService(incidentRepo, locationRepo, locationCache, seed.ExampleIncidents(time.Now()), log)
	reportService := service.NewReportService(incidentRepo, summarizer, renderer, cfg.SummaryCacheTTL, log)
	statsService := service.NewStatsService(statsRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, locationService, adminService, reportService, statsService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	handler.RegisterRoutes(router)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}
