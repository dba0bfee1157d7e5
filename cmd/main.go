package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"biomonitor/database"
	"biomonitor/docs"
	"biomonitor/internal/cache"
	"biomonitor/internal/controllers"
	"biomonitor/internal/geo"
	"biomonitor/internal/publisher"
	"biomonitor/internal/repository"
	"biomonitor/internal/services"
	"biomonitor/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "BioMonitor API"
	docs.SwaggerInfo.Description = "Personal health tracking: profiles, simulated vitals, records, reports and nearby medical centers."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	sessionRepo := repository.NewSessionRepository(database.DB)
	recordRepo := repository.NewVitalRecordRepository(database.DB)

	// Transient snapshots live in Redis when available, in memory otherwise
	var snapshots cache.SnapshotStore
	if redisStore, err := cache.NewRedisSnapshotStore(); err != nil {
		log.Printf("Warning: Redis unavailable, using in-memory snapshots: %v", err)
		snapshots = cache.NewMemorySnapshotStore()
	} else {
		defer redisStore.Close()
		snapshots = redisStore
		log.Println("Connected to Redis for transient snapshots")
	}

	// Optional record publisher
	var recordPublisher publisher.RecordPublisher
	if rabbitMQURL := os.Getenv("RABBITMQ_URL"); rabbitMQURL != "" {
		queueName := os.Getenv("RABBITMQ_RECORDS_QUEUE")
		if queueName == "" {
			queueName = "biomonitor.vital_records"
		}

		pub, err := publisher.NewRabbitMQPublisher(rabbitMQURL, queueName)
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, records will not be published: %v", err)
		} else {
			defer pub.Close()
			recordPublisher = pub
			log.Printf("Publishing saved records to queue %s", queueName)
		}
	}

	// Initialize services
	profileService := services.NewProfileService(userRepo, sessionRepo)
	vitalsService := services.NewVitalsService(snapshots, recordRepo, recordPublisher)
	reportService := services.NewReportService(userRepo, recordRepo)

	// Initialize controllers
	userController := controllers.NewUserController(profileService)
	vitalsController := controllers.NewVitalsController(vitalsService)
	reportController := controllers.NewReportController(reportService)
	centerController := controllers.NewCenterController(geo.NewClient())

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "BioMonitor API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterVitalsRoutes(router, vitalsController, profileService)
	routes.RegisterReportRoutes(router, reportController, profileService)
	routes.RegisterCenterRoutes(router, centerController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("BioMonitor API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
