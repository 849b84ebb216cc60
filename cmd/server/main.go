package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxerent/internal/config"
	"luxerent/internal/handlers"
	"luxerent/internal/middleware"
	"luxerent/internal/models"
	"luxerent/internal/repositories/postgres"
	"luxerent/internal/services"
	"luxerent/pkg/cache"
	"luxerent/pkg/database"
	"luxerent/pkg/logger"
	"luxerent/pkg/messaging"
	"luxerent/pkg/payment"
	"luxerent/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.App.LogLevel),
		Format:     "json",
		Output:     "stdout",
		AppName:    cfg.App.Name,
		AppVersion: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	auditLogger, err := logger.NewAuditLogger(&logger.Config{
		Level:      "info",
		Output:     "stdout",
		AppName:    cfg.App.Name,
		AppVersion: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to initialize audit logger: %v", err)
	}

	db, err := database.NewPostgres(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := database.NewMigrator(db.Pool).Up(context.Background()); err != nil {
			appLogger.Fatalf("Failed to run migrations: %v", err)
		}
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisCache.Close()

	// Repositories
	bookingRepo := postgres.NewBookingRepository(db.Pool)
	assetRepo := postgres.NewAssetRepository(db.Pool)
	membershipRepo := postgres.NewMembershipRepository(db.Pool)
	clientRepo := postgres.NewClientRepository(db.Pool)

	// External providers
	stripeProvider := payment.NewStripeProvider(cfg.Payment.Stripe.SecretKey, cfg.Payment.Stripe.WebhookSecret)
	twilioProvider := messaging.NewTwilioProvider(cfg.Messaging.Twilio.AccountSID, cfg.Messaging.Twilio.AuthToken, cfg.Messaging.Twilio.FromNumber)

	// Services
	insuranceService := services.NewInsuranceService(models.DefaultInsuranceTiers())
	vipService := services.NewVipService(models.DefaultVipProfiles())
	membershipService := services.NewMembershipService(models.DefaultMembershipTiers(), membershipRepo, appLogger)
	pricingService := services.NewPricingService(services.PricingConfig{
		TaxRate:                cfg.Pricing.TaxRate,
		YoungDriverFeePerDay:   cfg.Pricing.YoungDriverFeePerDay,
		RecentLicenseFeePerDay: cfg.Pricing.RecentLicenseFeePerDay,
		SecondDriverFeePerDay:  cfg.Pricing.SecondDriverFeePerDay,
		YoungDriverAgeLimit:    cfg.Pricing.YoungDriverAgeLimit,
		RecentLicenseYearLimit: cfg.Pricing.RecentLicenseYearLimit,
	}, insuranceService, vipService)
	cacheService := services.NewCacheService(redisCache, appLogger)
	bookingService := services.NewBookingService(
		pricingService, membershipService, cacheService,
		bookingRepo, assetRepo, clientRepo,
		stripeProvider, twilioProvider, appLogger,
	)

	// Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService, cfg.Messaging.ConciergePhone)
	assetHandler := handlers.NewAssetHandler(assetRepo, cacheService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	webhookHandler := handlers.NewWebhookHandler(bookingService)

	switch {
	case config.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case config.IsTest():
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()
	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			appLogger.Fatalf("Invalid trusted proxies: %v", err)
		}
	}
	router.Use(gin.Recovery())
	if config.IsDevelopment() {
		router.Use(gin.Logger())
	}
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.AuditMiddleware(auditLogger))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimitMiddleware(cacheService, int64(cfg.Security.RateLimitPerMinute), time.Minute))
	{
		routes.SetupBookingRoutes(v1, bookingHandler, cfg.Security.JWTSecret)
		routes.SetupAssetRoutes(v1, assetHandler)
		routes.SetupMembershipRoutes(v1, membershipHandler, cfg.Security.JWTSecret)
		routes.SetupWebhookRoutes(v1, webhookHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":      "healthy",
			"version":     cfg.App.Version,
			"environment": cfg.App.Environment,
		}
		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["database"] = err.Error()
		}
		if err := redisCache.Ping(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["redis"] = err.Error()
		}
		c.JSON(status, health)
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		appLogger.Infof("Starting server on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}
