package routes

import (
	"invention-portal-api/controllers"
	"invention-portal-api/middleware"
	"invention-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Browsing needs no account
			public.GET("/inventions", controllers.GetInventions)
			public.GET("/inventions/:id", controllers.GetInvention)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Invention Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)

			// Inventions
			inventions := protected.Group("/inventions")
			{
				inventions.POST("", controllers.CreateInvention)
				inventions.DELETE("/:id", controllers.DeleteInvention)

				// Engagement
				inventions.POST("/:id/comments", controllers.CreateComment)
				inventions.POST("/:id/like", controllers.ToggleLike)

				// Attachments
				inventions.POST("/:id/files", controllers.UploadFile)
			}

			protected.GET("/files/:file_id/download", controllers.DownloadFile)

			// Admin only: decisions and dashboard
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.PATCH("/inventions/:id/status", controllers.UpdateInventionStatus)
				admin.GET("/stats", controllers.GetStats)
			}
		}
	}
}
