package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"smartbuddy/handler"
	"smartbuddy/middleware"
	"smartbuddy/repository"
	"smartbuddy/services"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// bootstrap loads configuration and connects the shared clients. Kept out
// of init so the route table stays testable without a live database.
func bootstrap() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, relying on environment")
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	// Redis powers the token blacklist, the analytics cache and the
	// preference broadcast. The server still runs without it.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if err := services.InitRedis(redisURL); err != nil {
			log.Printf("Redis unavailable, running without it: %v", err)
		} else {
			services.GlobalAnalyticsCache = services.NewAnalyticsCache(
				services.RedisClient,
				utils.GetEnvAsDuration("ANALYTICS_CACHE_TTL", 5*time.Minute),
			)
			services.GlobalPreferenceBroadcaster = services.NewPreferenceBroadcaster(services.RedisClient)
		}
	}
}

// apiHandlers collects every handler the route table mounts.
type apiHandlers struct {
	user      *handler.UserHandler
	mood      *handler.MoodHandler
	task      *handler.TaskHandler
	events    *handler.EventsHandler
	focus     *handler.FocusHandler
	screen    *handler.ScreenHandler
	analytics *handler.AnalyticsHandler
	prefs     *handler.PreferencesHandler
	quotes    *handler.QuotesHandler
	pomodoro  *handler.PomodoroHandler
}

func setupRouter() *gin.Engine {
	router := gin.New()

	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Printf("Failed to set up indexes: %v", err)
	}

	// Repositories
	usersRepo := repository.GetUserRepo(utils.MongoClient)
	moodsRepo := repository.GetMoodsRepo(utils.MongoClient)
	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	eventsRepo := repository.GetEventsRepo(utils.MongoClient)
	focusRepo := repository.GetFocusSessionsRepo(utils.MongoClient)
	screenRepo := repository.GetScreenRepo(utils.MongoClient)
	prefsRepo := repository.GetPreferencesRepo(utils.MongoClient)

	// Services
	usersService := usecase.NewUsersService(usersRepo)
	moodsService := usecase.NewMoodsService(moodsRepo, services.GlobalAnalyticsCache)
	tasksService := usecase.NewTasksService(tasksRepo, services.GlobalAnalyticsCache)
	eventsService := usecase.NewEventsService(eventsRepo)
	focusService := usecase.NewFocusService(focusRepo, services.GlobalAnalyticsCache)
	analyticsService := usecase.NewAnalyticsService(
		moodsService, tasksService, eventsService, focusService,
		screenRepo, services.GlobalAnalyticsCache,
	)
	timerRegistry := usecase.NewTimerRegistry(focusService)

	// Handlers
	h := apiHandlers{
		user:      handler.NewUserHandler(usersService),
		mood:      handler.NewMoodHandler(moodsService),
		task:      handler.NewTaskHandler(tasksService),
		events:    handler.NewEventsHandler(eventsService),
		focus:     handler.NewFocusHandler(focusService),
		screen:    handler.NewScreenHandler(screenRepo, services.GlobalAnalyticsCache),
		analytics: handler.NewAnalyticsHandler(analyticsService),
		prefs:     handler.NewPreferencesHandler(prefsRepo, services.GlobalPreferenceBroadcaster),
		quotes:    handler.NewQuotesHandler(os.Getenv("QUOTE_API_URL")),
		pomodoro:  handler.NewPomodoroHandler(timerRegistry),
	}

	registerRoutes(router, h)
	return router
}

func registerRoutes(router *gin.Engine, h apiHandlers) {
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(int64(utils.GetEnvAsInt("MAX_REQUEST_BYTES", 1<<20))))

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", middleware.PrometheusHandler())

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", h.user.Register)
			auth.POST("/login", h.user.Login)
		}

		motivation := public.Group("/motivation")
		motivation.Use(middleware.CacheControlMiddleware("300"))
		{
			motivation.GET("/quotes/zen", h.quotes.GetQuote)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", h.user.GetProfile)
		}
		protected.POST("/auth/logout", h.user.Logout)

		moods := protected.Group("/mood-log")
		{
			moods.GET("/", h.mood.GetMoodEntries)
			moods.POST("/", h.mood.CreateMoodEntry)
			moods.PUT("/:id", h.mood.UpdateMoodEntry)
			moods.DELETE("/:id", h.mood.DeleteMoodEntry)
			moods.DELETE("/", h.mood.ClearMoodEntries)
			moods.GET("/stats", h.mood.GetMoodStats)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("/", h.task.GetUserTasks)
			tasks.POST("/", h.task.CreateTask)
			tasks.PUT("/:id", h.task.UpdateTask)
			tasks.POST("/complete/:id", h.task.CompleteTask)
			tasks.DELETE("/:id", h.task.DeleteTask)
			tasks.GET("/stats", h.task.GetTaskStats)
		}

		calendar := protected.Group("/calendar/events")
		{
			calendar.GET("/upcoming", h.events.GetUpcomingEvents)
			calendar.POST("/", h.events.SyncEvent)
		}

		pomodoro := protected.Group("/pomodoro")
		{
			pomodoro.GET("/", h.pomodoro.GetTimerState)
			pomodoro.POST("/start", h.pomodoro.StartTimer)
			pomodoro.POST("/pause", h.pomodoro.PauseTimer)
			pomodoro.POST("/complete", h.pomodoro.CompleteTimer)
			pomodoro.POST("/skip", h.pomodoro.SkipTimer)
			pomodoro.POST("/reset", h.pomodoro.ResetTimer)
		}

		screen := protected.Group("/screen-activity")
		{
			screen.POST("/", h.screen.ReportActivity)
			screen.GET("/analytics", h.analytics.GetDailyData)

			focus := screen.Group("/focus-sessions")
			{
				focus.GET("/", h.focus.GetSessions)
				focus.POST("/", h.focus.StartSession)
				focus.PUT("/:id", h.focus.EndSession)
				focus.GET("/today", h.focus.GetTodayTotal)
			}
		}

		protected.GET("/analytics/burnout", h.analytics.GetBurnoutReport)

		preferences := protected.Group("/preferences")
		{
			preferences.GET("/", h.prefs.GetPreferences)
			preferences.PUT("/", h.prefs.UpdatePreferences)
			preferences.GET("/stream", h.prefs.StreamPreferences)
		}
	}
}

func main() {
	bootstrap()
	utils.StartSystemMetrics(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second))

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
