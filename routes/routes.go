package routes

import (
	"github.com/ayiqazmi/MyCalorie/controllers"
	"github.com/ayiqazmi/MyCalorie/middlewares"
	"github.com/ayiqazmi/MyCalorie/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
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

		user.GET("/meal-plan", controllers.GetMealPlan)
		user.POST("/meal-plan/regenerate", controllers.RegenerateMealPlan)

		user.GET("/foods", controllers.ListFoods)
		user.POST("/foods", controllers.SubmitFood)

		user.GET("/ws", controllers.RealtimeSocket(hub))
	}

	return r
}
