package routing

import (
	"net/http"
	"os"
	"time"

	"calendar-assistant/internal/handlers"
	"calendar-assistant/internal/managers"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/schemas"
	"calendar-assistant/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRouter(extractionMgr managers.ExtractionMgr, calendarMgr managers.CalendarMgr, mailMgr managers.MailMgr,
	databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) *gin.Engine {
	// Initialize router with logging and recovery middleware
	router := gin.New()
	// Initialize middleware
	setupCommonMiddleware(router)
	// Setup routes
	setupRoutes(router, extractionMgr, calendarMgr, mailMgr, databaseMgr, jwtMgr)

	return router
}

func setupCommonMiddleware(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Accept, Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
	})
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupRoutes(router *gin.Engine, extractionMgr managers.ExtractionMgr, calendarMgr managers.CalendarMgr,
	mailMgr managers.MailMgr, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) {
	// Set up status route
	router.GET("/", func(c *gin.Context) {
		apiVersion := os.Getenv("API_VERSION")
		if apiVersion == "" {
			apiVersion = "main:latest"
		}

		metadata := &schemas.MetadataDTO{
			Status:     "ok",
			ApiName:    "Calendar Assistant",
			ApiVersion: apiVersion,
		}
		utils.WriteAndLogResponse(c, metadata, http.StatusOK)
	})

	// Set up health route
	router.GET("/health", func(c *gin.Context) {
		if databaseMgr != nil {
			// Ping the database
			if err := databaseMgr.GetPool().Ping(c); err != nil {
				c.String(http.StatusInternalServerError, "Database not responding")
				return
			}
		}
		c.Status(http.StatusOK)
	})

	assistantHdl := handlers.NewAssistantHandler(&extractionMgr, &calendarMgr, &mailMgr, databaseMgr)

	// Token auth only guards the assistant routes when a client secret hash
	// is configured, deployments without one run open.
	authEnabled := os.Getenv(utils.ClientSecretHashEnv) != ""

	// Set up assistant routes, paths unchanged from the first backend
	// generation so existing voice frontends keep working
	assistantRouter := router.Group("/")
	if authEnabled {
		assistantRouter.Use(jwtMgr.JWTMiddleware())
	}
	assistantRoutes(assistantRouter, assistantHdl)

	// Set up API routes
	apiRouter := router.Group("/api")
	{
		authHdl := handlers.NewAuthHandler(&jwtMgr)
		apiRouter.POST("/auth/token",
			middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.TokenRequest{} }),
			authHdl.CreateToken)

		historyRouter := apiRouter.Group("/history")
		if authEnabled {
			historyRouter.Use(jwtMgr.JWTMiddleware())
		}
		historyRouter.GET("", assistantHdl.GetHistory)
	}
}

func assistantRoutes(assistantRouter *gin.RouterGroup, assistantHdl handlers.AssistantHdl) {
	assistantRouter.POST("/extract",
		middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.ExtractRequest{} }),
		assistantHdl.Extract)
	assistantRouter.POST("/check_conflicts",
		middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.CheckConflictsRequest{} }),
		assistantHdl.CheckConflicts)
	assistantRouter.POST("/add_event",
		middleware.ValidateAndSanitizeStruct(func() interface{} { return &schemas.AddEventRequest{} }),
		assistantHdl.AddEvent)
}
