package routes

import (
	"conference-management-api/controllers"
	"conference-management-api/middleware"

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
			public.POST("/forgot-password", controllers.ForgotPassword)
			public.POST("/reset-password", controllers.ResetPassword)

			// Conference reference data
			public.GET("/conferences", controllers.GetConferences)
			public.GET("/conferences/:id/schedule", controllers.GetSchedule)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Conference Management API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Submissions
			submissions := protected.Group("/submissions")
			{
				submissions.GET("", controllers.GetSubmissions)
				submissions.POST("", controllers.CreateSubmission)
				submissions.POST("/:id/review", controllers.SubmitReview)

				// Only admin can decide outcomes and assign reviewers
				submissions.PUT("/:id/status", middleware.RequireAdmin(), controllers.UpdateSubmissionStatus)
				submissions.POST("/:id/reviewers", middleware.RequireAdmin(), controllers.AssignReviewer)
			}

			// Documents
			documents := protected.Group("/documents")
			{
				documents.GET("", controllers.GetDocuments)
				documents.POST("", controllers.UploadDocument)
				documents.POST("/:id/accept", controllers.AcceptDocument)

				// Only admin can verify
				documents.PUT("/:id/verify", middleware.RequireAdmin(), controllers.VerifyDocument)
			}
		}
	}
}
