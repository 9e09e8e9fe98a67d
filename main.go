package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SAI-KARTHIK999/SkinSey/handler"
	"github.com/SAI-KARTHIK999/SkinSey/middleware"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/services"
	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

const maxRequestBytes = 10 << 20

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"GROQ_API_KEY",
		"GEMINI_API_KEY",
		"WEATHER_API_KEY",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.DeviceInfoMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBytes))

	// Repositories
	userRepo := repository.GetUserRepo(utils.MongoClient)
	analysesRepo := repository.GetAnalysesRepo(utils.MongoClient)
	routinesRepo := repository.GetRoutinesRepo(utils.MongoClient)
	appointmentsRepo := repository.GetAppointmentsRepo(utils.MongoClient)
	medicationsRepo := repository.GetMedicationsRepo(utils.MongoClient)
	remindersRepo := repository.GetRemindersRepo(utils.MongoClient)
	communityRepo := repository.GetCommunityRepo(utils.MongoClient)

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Printf("Index setup failed: %v", err)
	}

	// The geo cache is optional: without Redis every search hits the
	// providers directly.
	var geoCache *services.GeoCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewGeoCache(redisURL)
		if err != nil {
			log.Printf("Redis unavailable, geo caching disabled: %v", err)
		} else {
			geoCache = cache
		}
	}

	// Provider clients and services
	visionClient := services.NewVisionClient(os.Getenv("GROQ_API_KEY"))
	geminiClient := services.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	geoClient := services.NewGeoClient()
	weatherClient := services.NewWeatherClient(os.Getenv("WEATHER_API_KEY"))

	analysisService := usecase.NewAnalysisService(visionClient, analysesRepo)
	chatService := usecase.NewChatService(geminiClient)
	planService := usecase.NewRoutinePlanService(geminiClient)
	doctorService := usecase.NewDoctorService(geoClient, geoCache)
	weatherService := usecase.NewWeatherService(weatherClient, geoCache)
	dashboardService := usecase.NewDashboardService(
		analysesRepo, routinesRepo, appointmentsRepo, remindersRepo, medicationsRepo)

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		handler.HealthHandler(c, utils.MongoClient)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegisterHandler(c, userRepo)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userRepo)
			})
		}

		community := public.Group("/community")
		community.Use(middleware.CacheControlMiddleware("60"))
		{
			community.GET("/tips", func(c *gin.Context) {
				handler.ListTipsHandler(c, communityRepo)
			})
			community.GET("/success-stories", func(c *gin.Context) {
				handler.ListSuccessStoriesHandler(c, communityRepo)
			})
			community.GET("/stats", func(c *gin.Context) {
				handler.CommunityStatsHandler(c, communityRepo, userRepo)
			})
		}
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(os.Getenv("JWT_SECRET_KEY")))
	{
		protected.POST("/onboarding", func(c *gin.Context) {
			handler.SaveOnboardingHandler(c, userRepo)
		})
		protected.GET("/onboarding", func(c *gin.Context) {
			handler.GetOnboardingHandler(c, userRepo)
		})

		protected.GET("/user/profile", func(c *gin.Context) {
			handler.ProfileHandler(c, dashboardService, userRepo)
		})

		protected.POST("/analyze-skin", func(c *gin.Context) {
			handler.AnalyzeSkinHandler(c, analysisService, userRepo)
		})
		protected.POST("/chatbot", func(c *gin.Context) {
			handler.ChatbotHandler(c, chatService)
		})
		protected.POST("/skincare-routine", func(c *gin.Context) {
			handler.SkincareRoutineHandler(c, planService)
		})

		protected.GET("/doctors/nearby", func(c *gin.Context) {
			handler.NearbyDoctorsHandler(c, doctorService)
		})

		appointments := protected.Group("/appointments")
		{
			appointments.GET("", func(c *gin.Context) {
				handler.ListAppointmentsHandler(c, appointmentsRepo)
			})
			appointments.POST("", func(c *gin.Context) {
				handler.BookAppointmentHandler(c, appointmentsRepo)
			})
			appointments.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteAppointmentHandler(c, appointmentsRepo)
			})
			appointments.PATCH("/:id/approve", func(c *gin.Context) {
				handler.ApproveAppointmentHandler(c, appointmentsRepo)
			})
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("", func(c *gin.Context) {
				handler.DashboardHandler(c, dashboardService, userRepo)
			})
			dashboard.GET("/progress", func(c *gin.Context) {
				handler.ProgressHandler(c, dashboardService, userRepo)
			})

			routines := dashboard.Group("/routines")
			{
				routines.GET("", func(c *gin.Context) {
					handler.GetRoutinesHandler(c, routinesRepo, userRepo)
				})
				routines.POST("", func(c *gin.Context) {
					handler.SaveRoutineCompletionHandler(c, routinesRepo, userRepo)
				})
				routines.PUT("", func(c *gin.Context) {
					handler.UpdateRoutineCompletionHandler(c, routinesRepo, userRepo)
				})
				routines.GET("/streak", func(c *gin.Context) {
					handler.RoutineStreakHandler(c, routinesRepo, userRepo)
				})
				routines.GET("/template", func(c *gin.Context) {
					handler.GetRoutineTemplateHandler(c, routinesRepo, userRepo)
				})
				routines.PUT("/template", func(c *gin.Context) {
					handler.SaveRoutineTemplateHandler(c, routinesRepo, userRepo)
				})
			}

			medications := dashboard.Group("/medications")
			{
				medications.GET("", func(c *gin.Context) {
					handler.ListMedicationsHandler(c, medicationsRepo, userRepo)
				})
				medications.POST("", func(c *gin.Context) {
					handler.LogMedicationHandler(c, medicationsRepo, userRepo)
				})
				medications.PUT("", func(c *gin.Context) {
					handler.UpdateMedicationHandler(c, medicationsRepo, userRepo)
				})
				medications.DELETE("", func(c *gin.Context) {
					handler.DeleteMedicationHandler(c, medicationsRepo, userRepo)
				})
			}

			reminders := dashboard.Group("/reminders")
			{
				reminders.GET("", func(c *gin.Context) {
					handler.ListRemindersHandler(c, remindersRepo, userRepo)
				})
				reminders.POST("", func(c *gin.Context) {
					handler.CreateReminderHandler(c, remindersRepo, userRepo)
				})
				reminders.PUT("", func(c *gin.Context) {
					handler.UpdateReminderHandler(c, remindersRepo, userRepo)
				})
				reminders.DELETE("", func(c *gin.Context) {
					handler.DeleteReminderHandler(c, remindersRepo, userRepo)
				})
			}

			dashboard.GET("/weather-recommendations", func(c *gin.Context) {
				handler.WeatherRecommendationsHandler(c, weatherService)
			})
		}

		community := protected.Group("/community")
		{
			community.POST("/tips", func(c *gin.Context) {
				handler.CreateTipHandler(c, communityRepo, userRepo)
			})
			community.POST("/tips/:id/like", func(c *gin.Context) {
				handler.LikeTipHandler(c, communityRepo)
			})
			community.DELETE("/tips/:id", func(c *gin.Context) {
				handler.DeleteTipHandler(c, communityRepo)
			})
			community.POST("/success-stories", func(c *gin.Context) {
				handler.CreateSuccessStoryHandler(c, communityRepo, userRepo)
			})
			community.DELETE("/success-stories/:id", func(c *gin.Context) {
				handler.DeleteSuccessStoryHandler(c, communityRepo)
			})
		}
	}

	return router
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
