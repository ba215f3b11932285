package leaderboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard 返回排行榜，支持 ?sort=wins|win_pct
func GetLeaderboard(c *gin.Context) {
	mode := SortMode(c.DefaultQuery("sort", string(SortByWins)))
	if mode != SortByWins && mode != SortByWinPct {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "排序方式必须是 wins 或 win_pct"})
		return
	}

	// 先走缓存，未命中再从权威数据库构建
	if entries, ok := getCached(mode); ok {
		c.JSON(http.StatusOK, gin.H{"status": "success", "leaderboard": entries})
		return
	}

	entries, err := globalService.Build(mode)
	if err != nil {
		if errors.Is(err, ErrInvalidSort) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "INVALID_INPUT", "message": "排序方式必须是 wins 或 win_pct"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "STORE_ERROR", "message": "获取排行榜数据失败"})
		return
	}

	setCached(mode, entries)
	c.JSON(http.StatusOK, gin.H{"status": "success", "leaderboard": entries})
}
