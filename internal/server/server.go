package server

import (
	"strings"
	"time"

	"coachlab.fr/suivicoach/internal/config"
	"coachlab.fr/suivicoach/internal/handler"
	"coachlab.fr/suivicoach/internal/middleware"
	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(db *gorm.DB, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	programRepo := repository.NewProgramRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	userSvc := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	availabilitySvc := service.NewAvailabilityService(availabilityRepo, cfg.CalendarDays, cfg.DefaultLocation)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)

	exerciseSvc := service.NewExerciseService(exerciseRepo)
	exerciseHandler := handler.NewExerciseHandler(exerciseSvc)

	programSvc := service.NewProgramService(programRepo, exerciseRepo, userRepo)
	programHandler := handler.NewProgramHandler(programSvc)

	journalSvc := service.NewJournalService(journalRepo)
	journalHandler := handler.NewJournalHandler(journalSvc)

	performanceSvc := service.NewPerformanceService(performanceRepo, programRepo, exerciseRepo, journalRepo)
	performanceHandler := handler.NewPerformanceHandler(performanceSvc)

	statsHandler := handler.NewStatsHandler(journalSvc, performanceSvc)

	nutritionSvc := service.NewNutritionService(foodRepo, mealPlanRepo, userRepo)
	nutritionHandler := handler.NewNutritionHandler(nutritionSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Both roles read the calendar; only the coach writes it.
		protected.GET("/calendar", availabilityHandler.GetCalendar)

		// Coach routes
		coach := protected.Group("/coach")
		coach.Use(authMiddleware.RequireCoach())
		{
			coach.POST("/users", userHandler.CreateUser)
			coach.GET("/users", userHandler.GetAllUsers)
			coach.GET("/athletes", userHandler.GetAthletes)

			coach.PUT("/availability", availabilityHandler.UpsertAvailability)

			coach.POST("/exercises", exerciseHandler.CreateExercise)
			coach.GET("/exercises", exerciseHandler.GetExercises)

			coach.POST("/programs", programHandler.CreateProgram)
			coach.GET("/programs", programHandler.GetAllPrograms)
			coach.GET("/programs/:id", programHandler.GetProgram)
			coach.PUT("/programs/:id/week", programHandler.ReplaceWeek)
			coach.DELETE("/programs/:id", programHandler.DeleteProgram)

			coach.GET("/stats/athletes/:id/journal", statsHandler.GetJournalHistory)
			coach.GET("/stats/athletes/:id/exercises", statsHandler.GetExerciseSeries)
			coach.GET("/stats/athletes/:id/tonnage", statsHandler.GetTonnage)
			coach.GET("/stats/athletes/:id/week-over-week", statsHandler.GetWeekOverWeek)

			coach.POST("/foods", nutritionHandler.CreateFood)
			coach.GET("/foods", nutritionHandler.GetFoods)
			coach.PUT("/foods/:id", nutritionHandler.UpdateFood)

			coach.POST("/meal-plans", nutritionHandler.CreateMealPlan)
			coach.GET("/meal-plans", nutritionHandler.GetMealPlans)
			coach.DELETE("/meal-plans/:id", nutritionHandler.DeleteMealPlan)
			coach.PUT("/meal-plans/:id/entries", nutritionHandler.SetMealEntries)
			coach.GET("/meal-plans/:id/totals", nutritionHandler.GetPlanTotals)
		}

		// Athlete routes
		athlete := protected.Group("/athlete")
		athlete.Use(authMiddleware.RequireAthlete())
		{
			athlete.GET("/programs", programHandler.GetMyPrograms)
			athlete.GET("/programs/:id", programHandler.GetMyProgram)

			athlete.GET("/meal-plans", nutritionHandler.GetMyMealPlans)

			athlete.POST("/journal", journalHandler.CreateEntry)
			athlete.GET("/journal", journalHandler.GetEntries)
			athlete.GET("/journal/:id", journalHandler.GetEntry)
			athlete.PUT("/journal/:id", journalHandler.UpdateEntry)

			athlete.POST("/performance", performanceHandler.LogEntry)
			athlete.PUT("/performance/:id", performanceHandler.UpdateEntry)
			athlete.GET("/sessions/:id/performance", performanceHandler.GetSessionEntries)
			athlete.GET("/sessions/:id/summary", performanceHandler.GetSessionDaySummary)
		}
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
