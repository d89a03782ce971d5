package routes

import (
	"github.com/pjoshi23/CalorIQ/controllers"
	"github.com/pjoshi23/CalorIQ/middlewares"
	"github.com/pjoshi23/CalorIQ/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto a Gin engine. push and rek
// may be nil when AWS is not configured; the affected routes degrade.
func SetupRouter(db *gorm.DB, hub *services.RealtimeHub, push *services.PushService, rek *services.RekognitionService) *gin.Engine {
	r := gin.Default()

	events := services.NewEvents(db, hub, push)

	profileSvc := services.NewProfileService(db)
	authSvc := services.NewAuthService(db, profileSvc)
	mealSvc := services.NewMealService(db, events)
	postSvc := services.NewPostService(db, events)
	socialSvc := services.NewSocialService(db, events)
	goalSvc := services.NewGoalService(db, mealSvc)
	visionSvc := services.NewVisionService()

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(authSvc, profileSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	postCtl := controllers.NewPostController(postSvc, profileSvc, socialSvc)
	socialCtl := controllers.NewSocialController(socialSvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	visionCtl := controllers.NewVisionController(visionSvc, rek)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(db))
	{
		api.GET("/user/me", userCtl.Me)
		api.PUT("/user/profile", userCtl.UpdateProfile)
		api.GET("/user/following", userCtl.Following)

		api.GET("/users", userCtl.List)
		api.GET("/users/:id", userCtl.Get)
		api.GET("/users/:id/posts", postCtl.ByUser)
		api.POST("/users/:id/follow", socialCtl.Follow)
		api.DELETE("/users/:id/follow", socialCtl.Unfollow)

		api.POST("/meals", mealCtl.Log)
		api.GET("/meals", mealCtl.List)
		api.DELETE("/meals/:id", mealCtl.Delete)
		api.GET("/meals/today", mealCtl.Today)
		api.GET("/meals/recent", mealCtl.Recent)
		api.GET("/meals/week", mealCtl.Week)

		api.POST("/posts", postCtl.Create)
		api.GET("/feed", postCtl.Feed)
		api.POST("/posts/:id/like", postCtl.Like)

		api.GET("/goals", goalCtl.Get)
		api.PUT("/goals", goalCtl.Upsert)
		api.GET("/goals/progress", goalCtl.Progress)

		api.POST("/analyze", visionCtl.Analyze)
		api.POST("/images", controllers.UploadImage)

		api.GET("/ws", rtCtl.EventsWS)

		if push != nil {
			deviceCtl := controllers.NewDeviceController(push)
			api.POST("/devices", deviceCtl.Register)
		}
	}

	return r
}
