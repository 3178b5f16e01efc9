package api

import (
	"net/http"

	"taskboard-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	requireAuth := delivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.authHandler.SignUp)
			auth.POST("/signin", h.authHandler.SignIn)
			auth.GET("/me", requireAuth, h.authHandler.Me)
		}

		fcm := api.Group("/fcm")
		fcm.Use(requireAuth)
		{
			fcm.POST("/register", h.authHandler.RegisterFCMToken)
			fcm.DELETE("/:token", h.authHandler.UnregisterFCMToken)
		}

		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("", h.projectHandler.List)
			projects.POST("", h.projectHandler.Create)
			projects.GET("/:id", h.projectHandler.Get)
			projects.PUT("/:id", h.projectHandler.Update)
			projects.DELETE("/:id", h.projectHandler.Delete)
		}

		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.GET("/views", h.taskHandler.GetViews)
			tasks.POST("/import", h.taskHandler.ImportTasks)
			tasks.GET("/:id", h.taskHandler.GetTaskByID)
			tasks.PUT("/:id", h.taskHandler.UpdateTask)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
			tasks.GET("/:id/attachments", h.attachmentHandler.List)
			tasks.POST("/:id/attachments", h.attachmentHandler.Upload)
		}

		attachments := api.Group("/attachments")
		attachments.Use(requireAuth)
		{
			attachments.GET("/:id/download", h.attachmentHandler.Download)
			attachments.DELETE("/:id", h.attachmentHandler.Delete)
		}

		labels := api.Group("/labels")
		labels.Use(requireAuth)
		{
			labels.GET("", h.labelHandler.List)
			labels.POST("", h.labelHandler.Create)
			labels.GET("/:id", h.labelHandler.Get)
			labels.PUT("/:id", h.labelHandler.Update)
			labels.DELETE("/:id", h.labelHandler.Delete)
		}

		taskLabels := api.Group("/task-labels")
		taskLabels.Use(requireAuth)
		{
			taskLabels.POST("", h.labelHandler.Assign)
			taskLabels.DELETE("", h.labelHandler.Unassign)
		}

		comments := api.Group("/comments")
		comments.Use(requireAuth)
		{
			comments.GET("", h.commentHandler.List)
			comments.POST("", h.commentHandler.Create)
			comments.PUT("/:id", h.commentHandler.Update)
			comments.DELETE("/:id", h.commentHandler.Delete)
		}

		reminders := api.Group("/reminders")
		reminders.Use(requireAuth)
		{
			reminders.GET("", h.reminderHandler.List)
			reminders.POST("", h.reminderHandler.Create)
			reminders.PUT("/:id", h.reminderHandler.Update)
			reminders.DELETE("/:id", h.reminderHandler.Delete)
		}

		activities := api.Group("/activities")
		activities.Use(requireAuth)
		{
			activities.GET("", h.activityHandler.List)
		}
	}
}
