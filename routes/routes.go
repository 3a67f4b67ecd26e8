package routes

import (
	"github.com/Abhivera/dietly-prototype-backend/controllers"
	"github.com/Abhivera/dietly-prototype-backend/middlewares"
	"github.com/Abhivera/dietly-prototype-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cache services.Cache, logger *zap.Logger) *gin.Engine {
	progressSvc := services.NewProgressService(db)
	mealSvc := services.NewMealService(db, progressSvc)
	exerciseSvc := services.NewExerciseService(db, progressSvc)
	foodSvc := services.NewFoodService(db, cache)
	prefsSvc := services.NewPreferencesService(db)
	profileSvc := services.NewProfileService(db, progressSvc)
	authSvc := services.NewAuthService(db)
	recSvc := services.NewRecommendationService(db, mealSvc, exerciseSvc)
	analyticsSvc := services.NewAnalyticsService(db, progressSvc)

	authCtl := controllers.NewAuthController(authSvc)
	profileCtl := controllers.NewProfileController(profileSvc, prefsSvc)
	prefsCtl := controllers.NewPreferencesController(prefsSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	exerciseCtl := controllers.NewExerciseController(exerciseSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	recCtl := controllers.NewRecommendationController(recSvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	// Everything else requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", profileCtl.GetProfile)
		api.PUT("/profile", profileCtl.UpdateProfile)

		api.GET("/preferences", prefsCtl.GetPreferences)
		api.PUT("/preferences", prefsCtl.UpdatePreferences)

		api.GET("/foods", foodCtl.ListFoods)
		api.POST("/foods", foodCtl.AddFood)
		api.GET("/foods/:id", foodCtl.GetFood)
		api.PUT("/foods/:id", foodCtl.UpdateFood)
		api.DELETE("/foods/:id", foodCtl.DeleteFood)

		api.GET("/exercises", exerciseCtl.ListExercises)
		api.POST("/exercises", exerciseCtl.CreateExercise)
		api.DELETE("/exercises/:id", exerciseCtl.DeleteExercise)
		api.POST("/exercises/log", exerciseCtl.LogExercise)
		api.GET("/exercises/log", exerciseCtl.GetExerciseLogs)
		api.DELETE("/exercises/log/:id", exerciseCtl.DeleteExerciseLog)

		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.GET("/meals/summary", mealCtl.GetMealSummary)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.GET("/recommendations/meals", recCtl.GetMealRecommendations)
		api.GET("/recommendations/exercises", recCtl.GetExerciseRecommendations)

		api.GET("/analytics/progress", analyticsCtl.GetProgress)
		api.GET("/analytics/charts", analyticsCtl.GetCharts)
	}

	return r
}
