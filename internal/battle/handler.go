package battle

import (
	"errors"
	"net/http"

	"github.com/SlpAus/meal-max-backend/internal/meal"
	"github.com/gin-gonic/gin"
)

// PrepRequestBody 定义了备战请求体的JSON结构，
// Meal字段既可以是数字ID也可以是菜名
type PrepRequestBody struct {
	Meal string `json:"meal" binding:"required"`
}

// respondBattleError 把引擎错误翻译为统一的错误响应。
// 所有错误都在请求边界被吸收，绝不让进程崩溃。
func respondBattleError(c *gin.Context, err error) {
	var notReady *NotReadyError
	var persistence *PersistenceError

	switch {
	case errors.Is(err, meal.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "NOT_FOUND", "message": "找不到指定的菜品"})
	case errors.Is(err, meal.ErrDeleted):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "NOT_FOUND", "message": "菜品已被删除"})
	case errors.Is(err, ErrDeletedCombatant):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_MEAL", "message": "已删除的菜品不能备战"})
	case errors.Is(err, ErrDuplicateCombatant):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_MEAL", "message": "这道菜已经在候选席上"})
	case errors.Is(err, ErrRosterFull):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "error": "CAPACITY_EXCEEDED", "message": "候选席已满，请先开战或清空"})
	case errors.As(err, &notReady):
		c.JSON(http.StatusConflict, gin.H{
			"status":     "error",
			"error":      "NOT_READY",
			"message":    "需要两名参战者才能开战",
			"combatants": notReady.Count,
		})
	case errors.As(err, &persistence):
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"error":   "PERSISTENCE_FAILURE",
			"message": "对战统计写入未完成，请核对双方战绩",
			"mealA":   persistence.MealAID,
			"mealB":   persistence.MealBID,
		})
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "对战需要两道不同的菜品"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "STORE_ERROR", "message": "内部错误: " + err.Error()})
	}
}

// PrepCombatant 把一道菜送入候选席
func PrepCombatant(c *gin.Context) {
	var body PrepRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "请求格式错误: " + err.Error()})
		return
	}

	size, err := globalService.Prep(body.Meal)
	if err != nil {
		respondBattleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "combatants": size})
}

// ClearCombatants 无条件清空候选席
func ClearCombatants(c *gin.Context) {
	globalService.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "候选席已清空"})
}

// GetCombatants 返回候选席上的菜品列表
func GetCombatants(c *gin.Context) {
	combatants := globalService.Combatants()

	responses := make([]meal.Response, 0, len(combatants))
	for _, m := range combatants {
		responses = append(responses, meal.ToResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "combatants": responses})
}

// StartBattle 发起一场对战并返回结果
func StartBattle(c *gin.Context) {
	result, err := globalService.StartBattle()
	if err != nil {
		respondBattleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "battle": result})
}
