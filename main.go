package main

import (
	"log"
	"net/http"
	"time"

	"assessment-service/internal/auth"
	"assessment-service/internal/cache"
	"assessment-service/internal/config"
	"assessment-service/internal/db"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	defer db.CloseMongo()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, lifecycle events will not be published")
	}

	// Redis result cache (optional)
	var resultCache *cache.ResultCache
	if cfg.RedisAddr != "" {
		resultCache = cache.NewResultCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if resultCache == nil {
			log.Println("Redis unavailable, running without result cache")
		}
	} else {
		log.Println("Redis not configured, running without result cache")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://app.datecoach.example.com"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Results
	resultRepo := repository.NewResultRepository(database)
	resultService := service.NewResultService(resultRepo, resultCache)
	resultHandler := handlers.NewResultHandler(resultService)

	// Assessments
	assessmentRepo := repository.NewAssessmentRepository(database)
	responseRepo := repository.NewResponseRepository(database)
	assessmentService := service.NewAssessmentService(assessmentRepo, responseRepo, questionRepo, resultService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)

	// Templates
	templateRepo := repository.NewTemplateRepository(database)
	templateService := service.NewTemplateService(templateRepo)
	templateHandler := handlers.NewTemplateHandler(templateService, resultService)

	// Public routes - Questions
	publicQuestion := r.Group("/public/assessment/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}

	// Public routes - Assessments (limited info)
	publicAssessment := r.Group("/public/assessment")
	{
		publicAssessment.GET("/:id", func(c *gin.Context) {
			assessmentHandler.GetAssessment(c)
			if publisher != nil {
				publisher.Publish("assessment.public_view", gin.H{"assessment_id": c.Param("id")})
			}
		})
		publicAssessment.GET("/:id/status", assessmentHandler.GetAssessmentStatus)
	}

	publicUser := r.Group("/public/assessment-user")
	{
		publicUser.GET("/:id/results", func(c *gin.Context) {
			resultHandler.GetResultsByUser(c)
			if publisher != nil {
				publisher.Publish("assessment.user_results", gin.H{"user_id": c.Param("id")})
			}
		})
		publicUser.GET("/:id/assessments", assessmentHandler.GetAssessmentsByUser)
	}

	setupProtectedRoutes(r, assessmentHandler, resultHandler, questionHandler, templateHandler, publisher)

	r.Run(":" + cfg.Port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	assessmentHandler *handlers.AssessmentHandler,
	resultHandler *handlers.ResultHandler,
	questionHandler *handlers.QuestionHandler,
	templateHandler *handlers.TemplateHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/assessment")

	// Authentication: gateway-injected user header or JWT bearer token
	protected.Use(func(c *gin.Context) {
		userID, err := auth.UserIDFromRequest(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
				"code":  "INVALID_TOKEN",
			})
			c.Abort()
			return
		}
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Request.Header.Set("X-User-ID", userID)
		c.Next()
	})

	// === ASSESSMENT LIFECYCLE ===
	{
		protected.POST("/", func(c *gin.Context) {
			assessmentHandler.CreateAssessment(c)
			if publisher != nil {
				publisher.Publish("assessment.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/:id/response", func(c *gin.Context) {
			assessmentHandler.SubmitResponse(c)
			if publisher != nil {
				publisher.Publish("assessment.response_submitted", gin.H{
					"assessment_id": c.Param("id"),
					"user_id":       c.GetHeader("X-User-ID"),
					"timestamp":     time.Now(),
				})
			}
		})

		protected.GET("/:id/responses", assessmentHandler.GetResponses)

		// Close the assessment and produce the final result
		protected.POST("/:id/complete", func(c *gin.Context) {
			assessmentHandler.CompleteAssessment(c)
			if publisher != nil {
				publisher.Publish("assessment.completed", gin.H{
					"assessment_id": c.Param("id"),
					"user_id":       c.GetHeader("X-User-ID"),
					"timestamp":     time.Now(),
				})
			}
		})

		// Re-score before finalization (idempotent)
		protected.POST("/:id/recompute", func(c *gin.Context) {
			assessmentHandler.RecomputeResult(c)
			if publisher != nil {
				publisher.Publish("assessment.recomputed", gin.H{
					"assessment_id": c.Param("id"),
					"user_id":       c.GetHeader("X-User-ID"),
					"timestamp":     time.Now(),
				})
			}
		})

		// === RESULTS AND PERSONALIZATION ===

		protected.GET("/:id/result", func(c *gin.Context) {
			resultHandler.GetResultByAssessment(c)
			if publisher != nil {
				publisher.Publish("assessment.result_viewed", gin.H{
					"assessment_id": c.Param("id"),
					"user_id":       c.GetHeader("X-User-ID"),
					"timestamp":     time.Now(),
				})
			}
		})

		protected.GET("/:id/message", func(c *gin.Context) {
			templateHandler.GetPersonalizedMessage(c)
			if publisher != nil {
				publisher.Publish("template.selected", gin.H{
					"assessment_id": c.Param("id"),
					"user_id":       c.GetHeader("X-User-ID"),
					"timestamp":     time.Now(),
				})
			}
		})
	}

	// === QUESTION AND TEMPLATE ADMINISTRATION ===
	protectedQuestion := r.Group("/protected/assessment-admin/question")
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	protectedTemplate := r.Group("/protected/assessment-admin/template")
	{
		protectedTemplate.GET("/", templateHandler.ListTemplates)
		protectedTemplate.POST("/", templateHandler.CreateTemplate)
		protectedTemplate.PUT("/:id", templateHandler.UpdateTemplate)
		protectedTemplate.DELETE("/:id", templateHandler.DeleteTemplate)
	}
}
