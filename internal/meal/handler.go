package meal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateMealRequestBody 定义了创建菜品时请求体的JSON结构
type CreateMealRequestBody struct {
	Name       string  `json:"name" binding:"required"`
	Cuisine    string  `json:"cuisine" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	Difficulty string  `json:"difficulty" binding:"required"`
}

// respondStoreError 把仓库层错误翻译为统一的错误响应
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "NOT_FOUND", "message": "找不到指定的菜品"})
	case errors.Is(err, ErrDeleted):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "NOT_FOUND", "message": "菜品已被删除"})
	case errors.Is(err, ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "同名菜品已存在"})
	case errors.Is(err, ErrInvalidMeal):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "STORE_ERROR", "message": "数据库操作失败"})
	}
}

// CreateMeal 创建一道新菜品
func CreateMeal(c *gin.Context) {
	var body CreateMealRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "请求格式错误: " + err.Error()})
		return
	}

	m := Meal{
		Name:       body.Name,
		Cuisine:    body.Cuisine,
		Price:      body.Price,
		Difficulty: Difficulty(body.Difficulty),
	}
	if err := defaultStore.Create(&m); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "meal": ToResponse(m)})
}

// ListMeals 返回所有未删除的菜品
func ListMeals(c *gin.Context) {
	meals, err := defaultStore.ListActive()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	responses := make([]Response, 0, len(meals))
	for _, m := range meals {
		responses = append(responses, ToResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "meals": responses})
}

// GetMealByID 根据数字ID获取单个菜品
func GetMealByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "菜品ID必须是正整数"})
		return
	}

	m, err := defaultStore.GetByID(uint(id))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "meal": ToResponse(*m)})
}

// GetMealByName 根据名称获取单个菜品
func GetMealByName(c *gin.Context) {
	m, err := defaultStore.GetByName(c.Param("name"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "meal": ToResponse(*m)})
}

// DeleteMeal 软删除一道菜品
func DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "菜品ID必须是正整数"})
		return
	}

	if err := defaultStore.SoftDelete(uint(id)); err != nil {
		respondStoreError(c, err)
		return
	}
	if afterDelete != nil {
		afterDelete()
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "菜品已删除"})
}
