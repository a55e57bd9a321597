package app

import (
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/config"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/middleware"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: landing page data and account creation.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/home", c.dashboard.Home)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Everything else requires a valid token.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)

		authGroup.GET("/modules", c.learning.ListModules)
		authGroup.GET("/modules/:id", c.learning.GetModule)
		authGroup.GET("/quizzes/:id", c.learning.GetQuiz)
		authGroup.POST("/quizzes/:id/submit", c.learning.SubmitQuiz)

		authGroup.GET("/challenges/:id", c.challenge.GetChallenge)
		authGroup.POST("/challenges/:id/submissions", c.challenge.Submit)
		authGroup.GET("/submissions", c.challenge.ListMySubmissions)

		authGroup.GET("/forum/posts", c.community.GetPosts)
		authGroup.POST("/forum/posts", c.community.CreatePost)

		// Submission review, teachers and admins only.
		teacher := authGroup.Group("/teacher")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.GET("/submissions", c.challenge.ListPendingSubmissions)
			teacher.PATCH("/submissions/:id", c.challenge.ReviewSubmission)
		}
	}
}
