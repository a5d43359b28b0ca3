package main

// @title SalesCRM API
// @version 1.0
// @description Multi-tenant sales CRM backend: leads, accounts, opportunities, quotes and the activity timeline.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sannty/salescrm/config"
	_ "github.com/sannty/salescrm/docs" // Swagger docs (generated)
	"github.com/sannty/salescrm/pkg/accounts"
	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/auth"
	"github.com/sannty/salescrm/pkg/cache"
	"github.com/sannty/salescrm/pkg/contacts"
	"github.com/sannty/salescrm/pkg/database"
	"github.com/sannty/salescrm/pkg/email"
	"github.com/sannty/salescrm/pkg/export"
	"github.com/sannty/salescrm/pkg/handlers"
	"github.com/sannty/salescrm/pkg/jobs"
	"github.com/sannty/salescrm/pkg/leads"
	"github.com/sannty/salescrm/pkg/logger"
	"github.com/sannty/salescrm/pkg/metrics"
	custommiddleware "github.com/sannty/salescrm/pkg/middleware"
	"github.com/sannty/salescrm/pkg/opportunities"
	"github.com/sannty/salescrm/pkg/organization"
	"github.com/sannty/salescrm/pkg/products"
	"github.com/sannty/salescrm/pkg/quotes"
	"github.com/sannty/salescrm/pkg/tasks"
	"github.com/sannty/salescrm/pkg/users"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2) // login/register stay tight

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(metrics.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "SalesCRM API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if err := redisClient.Redis.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize services
	emailService := email.NewService(cfg, appLogger)
	userService := users.NewService(db.Ent, emailService, appLogger)

	activityService := activity.NewService(db.Ent)
	observer := activity.NewObserver(activityService, appLogger)
	feedTTL := time.Duration(cfg.ActivityFeedCacheTTLSeconds) * time.Second
	activityFeed := activity.NewFeed(db.Ent, redisClient, feedTTL)

	leadService := leads.NewService(db.Ent, observer)
	opportunityService := opportunities.NewService(db.Ent, observer)
	accountService := accounts.NewService(db.Ent)
	contactService := contacts.NewService(db.Ent)
	taskService := tasks.NewService(db.Ent, observer, appLogger)
	quoteService := quotes.NewService(db.Ent, observer)
	productService := products.NewService(db.Ent)
	organizationService := organization.NewService(db.Ent)
	exportService := export.NewService(db.Ent)

	// Background jobs: overdue sweep + digest emails
	scheduler := jobs.NewScheduler(db.Ent, taskService, emailService, appLogger)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("❌ Failed to start job scheduler: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokenBlacklist, cfg)
	leadHandler := handlers.NewLeadHandler(leadService)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService)
	accountHandler := handlers.NewAccountHandler(accountService)
	contactHandler := handlers.NewContactHandler(contactService)
	taskHandler := handlers.NewTaskHandler(taskService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	productHandler := handlers.NewProductHandler(productService)
	activityHandler := handlers.NewActivityHandler(activityService, activityFeed, opportunityService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	exportHandler := handlers.NewExportHandler(exportService)

	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	// Auth routes (public, tightly rate limited)
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/register", authHandler.Register, authRateLimiter.RateLimitMiddleware())
	authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
	authRoutes.GET("/me", authHandler.Me, custommiddleware.JWTMiddleware(cfg.JWTSecret, tokenBlacklist))
	authRoutes.POST("/logout", authHandler.Logout, custommiddleware.JWTMiddleware(cfg.JWTSecret, tokenBlacklist))
	authRoutes.POST("/change-password", authHandler.ChangePassword, custommiddleware.JWTMiddleware(cfg.JWTSecret, tokenBlacklist))

	// Organization creation needs auth but not membership
	authed := v1.Group("")
	authed.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret, tokenBlacklist))
	authed.POST("/organizations", organizationHandler.CreateOrganization)

	// Everything below requires an organization
	protected := v1.Group("")
	protected.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret, tokenBlacklist))
	protected.Use(custommiddleware.RequireOrganization())
	{
		orgGroup := protected.Group("/organizations/current")
		orgGroup.GET("", organizationHandler.GetOrganization)
		orgGroup.GET("/members", organizationHandler.ListMembers)
		orgGroup.POST("/members", organizationHandler.AddMember, custommiddleware.RequireRole("admin"))
		orgGroup.DELETE("/members/:id", organizationHandler.RemoveMember, custommiddleware.RequireRole("admin"))

		leadsGroup := protected.Group("/leads")
		leadsGroup.POST("", leadHandler.CreateLead)
		leadsGroup.GET("", leadHandler.ListLeads)
		leadsGroup.GET("/:id", leadHandler.GetLead)
		leadsGroup.PUT("/:id", leadHandler.UpdateLead)
		leadsGroup.DELETE("/:id", leadHandler.DeleteLead)
		leadsGroup.POST("/:id/convert", leadHandler.ConvertLead)
		leadsGroup.GET("/:id/activity", activityHandler.LeadTimeline)

		oppsGroup := protected.Group("/opportunities")
		oppsGroup.POST("", opportunityHandler.CreateOpportunity)
		oppsGroup.GET("", opportunityHandler.ListOpportunities)
		oppsGroup.GET("/pipeline", opportunityHandler.PipelineValue)
		oppsGroup.GET("/:id", opportunityHandler.GetOpportunity)
		oppsGroup.PUT("/:id", opportunityHandler.UpdateOpportunity)
		oppsGroup.DELETE("/:id", opportunityHandler.DeleteOpportunity)
		oppsGroup.GET("/:id/activity", activityHandler.OpportunityTimeline)

		accountsGroup := protected.Group("/accounts")
		accountsGroup.POST("", accountHandler.CreateAccount)
		accountsGroup.GET("", accountHandler.ListAccounts)
		accountsGroup.GET("/:id", accountHandler.GetAccount)
		accountsGroup.PUT("/:id", accountHandler.UpdateAccount)
		accountsGroup.DELETE("/:id", accountHandler.DeleteAccount)

		contactsGroup := protected.Group("/contacts")
		contactsGroup.POST("", contactHandler.CreateContact)
		contactsGroup.GET("", contactHandler.ListContacts)
		contactsGroup.GET("/:id", contactHandler.GetContact)
		contactsGroup.PUT("/:id", contactHandler.UpdateContact)
		contactsGroup.DELETE("/:id", contactHandler.DeleteContact)
		contactsGroup.GET("/:id/activity", activityHandler.ContactTimeline)

		tasksGroup := protected.Group("/tasks")
		tasksGroup.POST("", taskHandler.CreateTask)
		tasksGroup.GET("", taskHandler.ListTasks)
		tasksGroup.GET("/overdue", taskHandler.OverdueTasks)
		tasksGroup.GET("/:id", taskHandler.GetTask)
		tasksGroup.PUT("/:id", taskHandler.UpdateTask)
		tasksGroup.DELETE("/:id", taskHandler.DeleteTask)
		tasksGroup.POST("/:id/complete", taskHandler.CompleteTask)

		quotesGroup := protected.Group("/quotes")
		quotesGroup.POST("", quoteHandler.CreateQuote)
		quotesGroup.GET("", quoteHandler.ListQuotes)
		quotesGroup.GET("/:id", quoteHandler.GetQuote)
		quotesGroup.POST("/:id/items", quoteHandler.AddLineItem)
		quotesGroup.PUT("/:id/items/:itemId", quoteHandler.UpdateLineItem)
		quotesGroup.DELETE("/:id/items/:itemId", quoteHandler.DeleteLineItem)
		quotesGroup.POST("/:id/recalculate", quoteHandler.RecalculateQuote)

		productsGroup := protected.Group("/products")
		productsGroup.GET("", productHandler.ListProducts)
		productsGroup.GET("/:id", productHandler.GetProduct)
		productsGroup.POST("", productHandler.CreateProduct, custommiddleware.RequireRole("admin", "manager"))
		productsGroup.PUT("/:id", productHandler.UpdateProduct, custommiddleware.RequireRole("admin", "manager"))
		productsGroup.DELETE("/:id", productHandler.RetireProduct, custommiddleware.RequireRole("admin", "manager"))

		activityGroup := protected.Group("/activity")
		activityGroup.GET("/feed", activityHandler.Dashboard)
		activityGroup.POST("", activityHandler.LogInteraction)

		protected.GET("/users/:id/activity-summary", activityHandler.UserSummary)

		exportGroup := protected.Group("/export")
		exportGroup.GET("/leads", exportHandler.ExportLeads)
		exportGroup.GET("/pipeline", exportHandler.ExportPipeline)
	}

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 SalesCRM API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: hourly overdue sweep, daily 8AM overdue digests")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	scheduler.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
