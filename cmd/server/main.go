package main

import (
	"net/http"

	"levelup/backend/internal/auth"
	"levelup/backend/internal/config"
	"levelup/backend/internal/database"
	"levelup/backend/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	// Swagger imports
	_ "levelup/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Level Up API
// @version         1.0
// @description     This is the API for the Level Up game event service.
// @host            localhost:8000
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Paths must match exactly; clients send /gametypes, not /gametypes/
	router.RedirectTrailingSlash = false

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Auth routes (public)
	router.POST("/register", handler.RegisterGamer)
	router.POST("/login", handler.LoginGamer)

	// Game type routes (protected, read-only)
	gameTypeRoutes := router.Group("/gametypes")
	gameTypeRoutes.Use(auth.AuthMiddleware())
	{
		gameTypeRoutes.GET("", handler.GetGameTypes)
		gameTypeRoutes.GET("/:id", handler.GetGameTypeByID)
	}

	// Game routes (protected)
	gameRoutes := router.Group("/games")
	gameRoutes.Use(auth.AuthMiddleware())
	{
		gameRoutes.GET("", handler.GetGames)
		gameRoutes.POST("", handler.CreateGame)
		gameRoutes.GET("/:id", handler.GetGameByID)
		gameRoutes.PUT("/:id", handler.UpdateGame)
		gameRoutes.DELETE("/:id", handler.DeleteGame)
	}

	// Event routes (protected)
	eventRoutes := router.Group("/events")
	eventRoutes.Use(auth.AuthMiddleware())
	{
		eventRoutes.GET("", handler.GetEvents)
		eventRoutes.POST("", handler.CreateEvent)
		eventRoutes.GET("/:id", handler.GetEventByID)
		eventRoutes.PUT("/:id", handler.UpdateEvent)
		eventRoutes.DELETE("/:id", handler.DeleteEvent)
		eventRoutes.POST("/:id/signup", handler.SignupEvent)
		eventRoutes.DELETE("/:id/leave", handler.LeaveEvent)
	}

	logrus.Infof("Server is running on %s", config.AppConfig.ServerAddress)
	logrus.Infof("Swagger UI is available at http://localhost%s/swagger/index.html", config.AppConfig.ServerAddress)
	logrus.Fatal(router.Run(config.AppConfig.ServerAddress))
}
