package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log zerolog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	supportRepo := repository.NewSupportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL, log)
	cartSvc := services.NewCartService(orderRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, cartSvc, cfg.DeliveryFee, cfg.TaxRatePercent, log)
	restSvc := services.NewRestaurantService(restRepo, feedbackRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, orderRepo, restRepo)
	supportSvc := services.NewSupportService(supportRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)
	supportCtrl := controllers.NewSupportController(supportSvc)

	authAny := middlewares.AuthMiddleware(cfg.JWTSecret, log)
	authUser := middlewares.AuthMiddleware(cfg.JWTSecret, log, entity.RoleUser)
	authRest := middlewares.AuthMiddleware(cfg.JWTSecret, log, entity.RoleRestaurant)

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/user/register", authCtrl.RegisterUser)
		auth.POST("/user/login", authCtrl.LoginUser)
		auth.POST("/restaurant/register", authCtrl.RegisterRestaurant)
		auth.POST("/restaurant/login", authCtrl.LoginRestaurant)
		auth.GET("/me", authAny, authCtrl.Me)
	}

	// Restaurant directory (public)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/search/:query", restCtrl.Search)

	// Menu management (restaurant role, own menu only)
	menu := api.Group("/restaurant/menu", authRest)
	{
		menu.POST("", restCtrl.AddMenuItem)
		menu.PUT("/:itemId", restCtrl.UpdateMenuItem)
		menu.DELETE("/:itemId", restCtrl.DeleteMenuItem)
	}

	// Restaurant-side orders
	restOrders := api.Group("/restaurant/orders", authRest)
	{
		restOrders.GET("", orderCtrl.ListForRestaurant)
		restOrders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Cart (user role)
	cart := api.Group("/cart", authUser)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.SetQuantity)
		cart.DELETE("/items", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user role)
	orders := api.Group("/orders", authUser)
	{
		orders.POST("", orderCtrl.Create)
		orders.POST("/checkout", orderCtrl.Checkout)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Feedback
	api.POST("/feedback", authUser, feedbackCtrl.Create)
	api.GET("/feedback/restaurant/:id", feedbackCtrl.ListForRestaurant)

	// Support
	api.POST("/support", middlewares.OptionalAuth(cfg.JWTSecret), supportCtrl.Create)
	api.GET("/support/mine", authUser, supportCtrl.Mine)
}
