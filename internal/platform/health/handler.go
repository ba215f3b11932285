package health

import (
	"net/http"

	"github.com/SlpAus/meal-max-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// GetHealth 报告进程自身、权威数据库和Redis缓存的状态
func GetHealth(c *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	if !database.IsRedisHealthy() {
		redisStatus = "degraded"
	}

	code := http.StatusOK
	if dbStatus != "up" {
		// 权威数据库不可用时服务无法工作；Redis只影响缓存，不降级健康码
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   "success",
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
