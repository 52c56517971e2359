package main

import (
	"log"
	"os"
	"time"

	"assessment-service/internal/catalog"
	"assessment-service/internal/db"
	"assessment-service/internal/event"
	"assessment-service/internal/flow"
	"assessment-service/internal/geo"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"
	"assessment-service/internal/transport"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	resultsURL := os.Getenv("RESULTS_API_URL")
	if resultsURL == "" {
		log.Fatal("RESULTS_API_URL is required")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	var sink service.EventSink
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		sink = publisher
	} else {
		log.Println("RabbitMQ not configured, assessment events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://health.phrimp.io.vn"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("assessment_service")

	// Sessions
	sessionRepo := repository.NewSessionRepository(database)
	machine := flow.NewMachine(catalog.Questions())
	sessionService := service.NewSessionService(sessionRepo, machine, sink)

	// Submission
	resultRepo := repository.NewResultRepository(database)
	resultsClient := transport.NewResultsClient(resultsURL)
	resolver := geo.NewResolver()
	submissionService := service.NewSubmissionService(sessionRepo, resultRepo, resultsClient, resolver, sink)

	// Preferences
	prefRepo := repository.NewPreferenceRepository(redisClient)
	prefService := service.NewPreferenceService(prefRepo)

	sessionHandler := handlers.NewSessionHandler(sessionService, submissionService, prefService)
	catalogHandler := handlers.NewCatalogHandler()
	prefHandler := handlers.NewPreferenceHandler(prefService)

	publicQuestion := r.Group("/public/assessment/question")
	{
		publicQuestion.GET("/", catalogHandler.ListQuestions)
		publicQuestion.GET("/:id", catalogHandler.GetQuestion)
	}

	publicPrefs := r.Group("/public/assessment/preferences")
	{
		publicPrefs.GET("/", prefHandler.Get)
		publicPrefs.PUT("/theme", prefHandler.SetTheme)
		publicPrefs.PUT("/language", prefHandler.SetLanguage)
	}

	publicSession := r.Group("/public/assessment/session")
	{
		publicSession.POST("/", sessionHandler.CreateSession)
		publicSession.GET("/:id", sessionHandler.GetSession)
		publicSession.POST("/:id/consent", sessionHandler.Consent)
		publicSession.POST("/:id/start", sessionHandler.Start)
		publicSession.PUT("/:id/answer", sessionHandler.Answer)
		publicSession.POST("/:id/advance", sessionHandler.Advance)
		publicSession.POST("/:id/retreat", sessionHandler.Retreat)
		publicSession.POST("/:id/restart", sessionHandler.Restart)
		publicSession.POST("/:id/submit", sessionHandler.Submit)
		publicSession.GET("/:id/result", sessionHandler.Result)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "6668"
	}
	r.Run(":" + port)
}
