package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "github.com/breezy-weather/breezy-weather-sub005/configs"
	"github.com/breezy-weather/breezy-weather-sub005/internal/application/controller"
	"github.com/breezy-weather/breezy-weather-sub005/internal/application/middleware"
	"github.com/breezy-weather/breezy-weather-sub005/internal/application/processor"
	"github.com/breezy-weather/breezy-weather-sub005/internal/application/schedule"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/api"
	cachegw "github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/cache"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/db"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/queue"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/health"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/refresh"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/weather"
	"github.com/breezy-weather/breezy-weather-sub005/internal/infra/aws"
	gormdb "github.com/breezy-weather/breezy-weather-sub005/internal/infra/database/gorm"
	sqldb "github.com/breezy-weather/breezy-weather-sub005/internal/infra/database/sql"
	httpclient "github.com/breezy-weather/breezy-weather-sub005/pkg/http"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/msg"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/redis"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/resource"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/sqs"
)

const refreshWorkerName = "weather-refresh-worker"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appName := resource.GetString("app.name")
	port := resource.GetString("app.server.port")
	log.Info(msg.GetMessage("app.start", appName, port))

	// Init weather sources
	registry := api.NewRegistry(
		api.NewOpenMeteoSource(
			newProviderClient("openmeteo-forecast", resource.GetString("app.provider.openmeteo.forecast-url")),
			newProviderClient("openmeteo-air-quality", resource.GetString("app.provider.openmeteo.air-quality-url")),
			newProviderClient("openmeteo-geocoding", resource.GetString("app.provider.openmeteo.geocoding-url")),
		),
		api.NewAccuWeatherSource(
			newProviderClient("accuweather", resource.GetString("app.provider.accuweather.url")),
			resource.GetString("app.provider.accuweather.api-key"),
		),
		api.NewNWSSource(
			newProviderClient("nws", resource.GetString("app.provider.nws.url")),
		),
	)

	// Init Redis
	redisClient := redis.NewClient(&redis.Config{
		Host:            resource.GetString("app.redis.host"),
		Port:            resource.GetInt("app.redis.port"),
		Password:        resource.GetString("app.redis.password"),
		Database:        resource.GetInt("app.redis.database"),
		DefaultCacheTTL: time.Hour,
		CacheTTLs: map[string]time.Duration{
			"places": resource.GetDuration("app.redis.place-cache-ttl"),
		},
	})
	defer func() { _ = redisClient.Close() }()
	placeCache := redis.NewCache(redisClient, "places")

	// Init SQS
	queueName := resource.GetString("app.queue.refresh-queue-name")
	sqsClient := aws.NewSqsClient()
	queueSender := queue.NewSQSSender(sqs.NewSender(sqsClient))

	// Init Gateways
	weatherGateway := db.NewGormWeatherGateway(gormdb.Db)
	locationGateway := db.NewGormLocationGateway(gormdb.Db)
	dbHealthGateway := db.NewSQLHealthDBGateway(sqldb.Db)
	cacheHealthGateway := cachegw.NewRedisHealthGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()

	// Init UseCases
	retention := time.Duration(resource.GetInt("app.retention.days")) * 24 * time.Hour
	refreshUseCase := refresh.NewRefreshUseCase(
		registry,
		weatherGateway,
		locationGateway,
		queueSender,
		queueName,
		resource.GetInt("app.queue.enqueue-batch-size"),
		retention,
	)
	weatherUseCase := weather.NewWeatherUseCase(registry, weatherGateway, locationGateway, queueSender, placeCache, queueName)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway, queueHealthGateway)

	// Init Worker
	refreshProcessor := processor.NewRefreshProcessor(refreshUseCase)
	worker, err := sqs.NewWorker(ctx, sqsClient, queueName, refreshProcessor, &sqs.WorkerConfig{
		PoolSize: resource.GetInt("app.queue.worker-concurrency"),
	})
	if err != nil {
		log.Errorf("Failed to create refresh worker: %v", err)
		os.Exit(1)
	}
	queueHealthGateway.RegisterWorker(refreshWorkerName, worker)
	go worker.Start(ctx)

	// Init HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase, refreshUseCase)
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()

	// Init Schedules
	refreshScheduler := schedule.NewRefreshScheduler(
		refreshUseCase,
		redisClient,
		resource.GetString("app.refresh.cron"),
		resource.GetInt("app.refresh.lock-ttl-seconds"),
		resource.GetInt("app.refresh.lock-refresh-seconds"),
	)
	refreshScheduler.InitRefreshScheduleTasks(ctx)

	retentionScheduler, err := schedule.NewRetentionScheduler(refreshUseCase, resource.GetString("app.retention.cron"))
	if err != nil {
		log.Errorf("Failed to create retention scheduler: %v", err)
		os.Exit(1)
	}
	if err := retentionScheduler.Start(); err != nil {
		log.Errorf("Failed to start retention scheduler: %v", err)
		os.Exit(1)
	}

	go func() {
		if err := e.Start(":" + port); err != nil {
			log.Warnf("HTTP server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop", appName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warnf("HTTP server shutdown failed: %v", err)
	}
	refreshScheduler.Stop()
	retentionScheduler.Stop()
	queueHealthGateway.UnregisterWorker(refreshWorkerName)
}

// newProviderClient builds a provider-bound HTTP client with retries and a
// circuit breaker per provider host.
func newProviderClient(name, baseURL string) *httpclient.Client {
	return httpclient.NewHttpClient(baseURL, httpclient.ClientOptions{
		ReadTimeout:       resource.GetDuration("app.http.read-timeout"),
		ConnectionTimeout: resource.GetDuration("app.http.connection-timeout"),
		Backoff: &httpclient.BackoffConfig{
			MaxRetries:      resource.GetInt("app.http.max-retries"),
			InitialInterval: resource.GetDuration("app.http.initial-interval"),
			MaxInterval:     resource.GetDuration("app.http.max-interval"),
		},
		Logger: httpclient.ZapHTTPLogger{},
	}).WithCircuitBreaker(name)
}
