package routes

import (
	"github.com/rnp2860/boleh-makan-vo-sub000/controllers"
	"github.com/rnp2860/boleh-makan-vo-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Analyze  *controllers.AnalyzeController
	Meals    *controllers.MealController
	Ledger   *controllers.LedgerController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Core pipeline
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/analyze", ctl.Analyze.Analyze)
	}

	// Meal log
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", ctl.Meals.SaveMeal)
		meals.GET("", ctl.Meals.ListMeals)
		meals.GET("/recent", ctl.Meals.RecentMeals)
		meals.GET("/flagged", ctl.Meals.FlaggedMeals)
		meals.GET("/:id", ctl.Meals.GetMeal)
		meals.DELETE("/:id", ctl.Meals.DeleteMeal)
	}

	// Daily ledger and targets
	ledger := r.Group("/ledger")
	ledger.Use(middlewares.AuthMiddleware())
	{
		ledger.GET("/today", ctl.Ledger.Today)
		ledger.GET("/targets", ctl.Ledger.GetTargets)
		ledger.PUT("/targets", ctl.Ledger.UpdateTargets)
	}

	// Realtime alerts
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", ctl.Realtime.AlertsWS)
	}

	return r
}
