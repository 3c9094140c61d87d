package routes

import (
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/configs"
	"github.com/Deepanghsh/Smart-Ward-Admin/controllers"
	"github.com/Deepanghsh/Smart-Ward-Admin/middlewares"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"
	"github.com/Deepanghsh/Smart-Ward-Admin/services"
	"github.com/Deepanghsh/Smart-Ward-Admin/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	annRepo := repository.NewAnnouncementRepository(db)
	lfRepo := repository.NewLostFoundRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	issueSvc := services.NewIssueService(issueRepo, userRepo)
	annSvc := services.NewAnnouncementService(annRepo, userRepo)
	lfSvc := services.NewLostFoundService(lfRepo, userRepo)
	userSvc := services.NewUserService(userRepo)
	analyticsSvc := services.NewAnalyticsService(issueRepo, userRepo, annRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	issueCtrl := controllers.NewIssueController(issueSvc, hub)
	annCtrl := controllers.NewAnnouncementController(annSvc, hub)
	lfCtrl := controllers.NewLostFoundController(lfSvc)
	userCtrl := controllers.NewUserController(userSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/forgot-password", authCtrl.ForgotPassword)

		a.GET("/me", auth, authCtrl.Me)
		a.PUT("/profile", auth, authCtrl.UpdateProfile)
		a.PUT("/change-password", auth, authCtrl.ChangePassword)
		a.POST("/logout", auth, authCtrl.Logout)
	}

	// Issues
	issues := api.Group("/issues", auth)
	{
		issues.GET("/stats", adminOnly, issueCtrl.Stats)
		issues.GET("", issueCtrl.List)
		issues.POST("", issueCtrl.Create)
		issues.GET("/:id", issueCtrl.Get)
		issues.PUT("/:id/status", adminOnly, issueCtrl.UpdateStatus)
		issues.PUT("/:id/assign", adminOnly, issueCtrl.Assign)
		issues.POST("/:id/comments", issueCtrl.AddComment)
		issues.DELETE("/:id", issueCtrl.Delete) // owner-or-admin enforced in service
	}

	// Announcements
	anns := api.Group("/announcements", auth)
	{
		anns.GET("", annCtrl.List)
		anns.GET("/:id", annCtrl.Get)
		anns.POST("", adminOnly, annCtrl.Create)
		anns.PUT("/:id", adminOnly, annCtrl.Update)
		anns.DELETE("/:id", adminOnly, annCtrl.Delete)
	}

	// Lost & Found
	lf := api.Group("/lost-found", auth)
	{
		lf.GET("/stats", adminOnly, lfCtrl.Stats)
		lf.GET("", lfCtrl.List)
		lf.POST("", lfCtrl.Create)
		lf.GET("/:id", lfCtrl.Get)
		lf.PUT("/:id", lfCtrl.Update)
		lf.PUT("/:id/claim", lfCtrl.Claim)
		lf.DELETE("/:id", lfCtrl.Delete)
	}

	// Users (admin only)
	users := api.Group("/users", adminOnly)
	{
		users.GET("/stats", userCtrl.Stats)
		users.GET("", userCtrl.List)
		users.GET("/:id", userCtrl.Get)
		users.PUT("/:id", userCtrl.Update)
		users.DELETE("/:id", userCtrl.Delete)
	}

	// Analytics (admin only)
	analytics := api.Group("/analytics", adminOnly)
	{
		analytics.GET("/dashboard", analyticsCtrl.Dashboard)
		analytics.GET("/trends", analyticsCtrl.Trends)
		analytics.GET("/categories", analyticsCtrl.Categories)
		analytics.GET("/hostels", analyticsCtrl.Hostels)
	}

	// Real-time push
	r.GET("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
