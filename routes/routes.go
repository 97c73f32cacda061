package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"foodchef/configs"
	"foodchef/controllers"
	"foodchef/middlewares"
	"foodchef/pkg/notify"
	"foodchef/repository"
	"foodchef/services"
)

// NewEngine builds the router with recovery and the JSON fallbacks for
// unknown routes and wrong methods, so API clients never see gin's
// plain-text defaults.
func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"status": "error", "error": "method not allowed"})
	})
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *logrus.Logger, notifier notify.Notifier) {
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "success"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	resRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	fbRepo := repository.NewFeedbackRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, log)
	resSvc := services.NewReservationService(db, resRepo, log, notifier, cfg.TotalTables)
	orderSvc := services.NewOrderService(db, orderRepo, log, notifier)
	fbSvc := services.NewFeedbackService(fbRepo, log, notifier)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	resCtrl := controllers.NewReservationController(resSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	fbCtrl := controllers.NewFeedbackController(fbSvc)
	siteCtrl := controllers.NewSiteController(siteRepo, log)
	adminCtrl := controllers.NewAdminController(orderSvc, resSvc, fbSvc)

	// Auth
	r.POST("/auth/login", authCtrl.Login)

	// JSON API (static bearer-key allow-list; contact stays open)
	api := r.Group("/api")
	{
		api.POST("/contact", siteCtrl.Contact)

		keyed := api.Group("", middlewares.APIKeyAuth(cfg.APIKeys))
		{
			keyed.GET("/menu", menuCtrl.PublicMenu)
			keyed.GET("/menu/categories", menuCtrl.Categories)
			keyed.POST("/reservations", resCtrl.Create)
			keyed.GET("/reservations", resCtrl.Latest)
			keyed.GET("/reservations/availability", resCtrl.CheckAvailability)
			keyed.GET("/about", siteCtrl.About)
			keyed.GET("/team", siteCtrl.Team)
		}
	}

	// Public site
	r.POST("/orders", orderCtrl.Create)
	r.POST("/reviews", fbCtrl.SubmitReview)
	r.POST("/feedback", fbCtrl.Submit)
	r.GET("/foods/:id/reviews", fbCtrl.FoodReviews)

	// Admin (JWT, role admin)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), middlewares.ActivityLog(log))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/profile", authCtrl.Profile)

		admin.GET("/reservations", resCtrl.ByDate)
		admin.GET("/reservations/upcoming", resCtrl.Upcoming)
		admin.GET("/reservations/statistics", resCtrl.Statistics)
		admin.PATCH("/reservations/:id/status", resCtrl.UpdateStatus)
		admin.PATCH("/reservations/:id/cancel", resCtrl.Cancel)
		admin.POST("/reservations/reminders", resCtrl.SendReminders)

		admin.GET("/orders", orderCtrl.ByStatus)
		admin.GET("/orders/today", orderCtrl.Today)
		admin.GET("/orders/statistics", orderCtrl.Statistics)
		admin.GET("/orders/export", orderCtrl.Export)
		admin.GET("/orders/:id", orderCtrl.Detail)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		admin.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		admin.GET("/reviews/pending", fbCtrl.PendingReviews)
		admin.PATCH("/reviews/:id/moderate", fbCtrl.Moderate)
		admin.GET("/feedback/statistics", fbCtrl.Statistics)
		admin.GET("/feedback/history", fbCtrl.CustomerHistory)
		admin.PATCH("/feedback/:id/status", fbCtrl.UpdateStatus)
		admin.DELETE("/feedback/:id", fbCtrl.Delete)

		admin.POST("/menu/foods", menuCtrl.CreateFood)
		admin.PATCH("/menu/foods/:id", menuCtrl.UpdateFood)
		admin.POST("/menu/categories", menuCtrl.CreateCategory)
	}
}
