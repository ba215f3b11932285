package api

import (
	"github.com/SlpAus/meal-max-backend/internal/battle"
	"github.com/SlpAus/meal-max-backend/internal/leaderboard"
	"github.com/SlpAus/meal-max-backend/internal/meal"
	"github.com/SlpAus/meal-max-backend/internal/platform/health"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 菜品CRUD相关的路由组 /api/meals
		mealRoutes := api.Group("/meals")
		{
			mealRoutes.POST("", meal.CreateMeal)
			mealRoutes.GET("", meal.ListMeals)
			mealRoutes.GET("/id/:id", meal.GetMealByID)
			mealRoutes.GET("/name/:name", meal.GetMealByName)
			mealRoutes.DELETE("/id/:id", meal.DeleteMeal)
		}

		// 对战相关的路由组 /api/battle
		battleRoutes := api.Group("/battle")
		{
			battleRoutes.POST("/prep", battle.PrepCombatant)
			battleRoutes.POST("/clear", battle.ClearCombatants)
			battleRoutes.GET("/combatants", battle.GetCombatants)
			battleRoutes.POST("/start", battle.StartBattle)
		}

		// 排行榜和健康检查
		api.GET("/leaderboard", leaderboard.GetLeaderboard)
		api.GET("/health", health.GetHealth)
	}
}
