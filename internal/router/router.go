package router

import (
	"time"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/handlers"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/middleware"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Root)
	r.Static("/avatars", handlers.AvatarDir())

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/register", handlers.Register)
		api.POST("/token", handlers.IssueToken)

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("/me", handlers.Me)
			users.PATCH("/me", handlers.UpdateProfile)
			users.PATCH("/me/notifications", handlers.UpdateNotificationSettings)
			users.POST("/me/avatar", handlers.UploadAvatar)
		}

		characters := api.Group("/characters", middleware.AuthMiddleware())
		{
			characters.POST("", handlers.CreateCharacter)
			characters.GET("", handlers.ListCharacters)
		}

		items := api.Group("/items", middleware.AuthMiddleware())
		{
			items.POST("", handlers.CreateItem)
			items.GET("", handlers.ListItems)
		}

		monsters := api.Group("/monsters", middleware.AuthMiddleware())
		{
			monsters.POST("", handlers.CreateMonster)
			monsters.GET("", handlers.ListMonsters)
		}

		npcs := api.Group("/npcs", middleware.AuthMiddleware())
		{
			npcs.POST("", handlers.CreateNPC)
			npcs.GET("", handlers.ListNPCs)
		}

		stories := api.Group("/stories", middleware.AuthMiddleware())
		{
			stories.POST("", handlers.CreateStory)
			stories.GET("", handlers.ListStories)
		}

		tables := api.Group("/tables", middleware.AuthMiddleware())
		{
			tables.POST("", handlers.CreateTable)
			tables.GET("", handlers.ListTables)
			tables.POST("/:table_id/join", handlers.RequestJoinTable)
			tables.GET("/:table_id/requests", handlers.ListJoinRequests)
			tables.PUT("/:table_id/requests/:request_id", handlers.ManageJoinRequest)
		}

		backup := api.Group("/backup", middleware.AuthMiddleware())
		{
			backup.GET("/export", handlers.ExportBackup)
			backup.POST("/import", handlers.ImportBackup)
		}
	}

	return r
}
