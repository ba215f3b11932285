package leaderboard

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SlpAus/meal-max-backend/internal/platform/database"
	"github.com/SlpAus/meal-max-backend/pkg/lifecycle"
)

// 排行榜缓存的Redis键，每种排序方式一个
const (
	cacheKeyWins   = "leaderboard:wins"
	cacheKeyWinPct = "leaderboard:win_pct"

	// refreshInterval 是后台刷新器的周期
	refreshInterval = 30 * time.Second
)

func cacheKey(mode SortMode) string {
	if mode == SortByWinPct {
		return cacheKeyWinPct
	}
	return cacheKeyWins
}

// getCached 尝试从Redis读取已缓存的排行榜，未命中或Redis不可用时返回false
func getCached(mode SortMode) ([]Entry, bool) {
	if !database.IsRedisHealthy() {
		return nil, false
	}

	payload, err := database.RDB.Get(database.Ctx, cacheKey(mode)).Result()
	if err != nil {
		return nil, false
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// setCached 把排行榜写入Redis缓存，失败只降级不报错
func setCached(mode SortMode, entries []Entry) {
	if !database.IsRedisHealthy() {
		return
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := database.RDB.Set(database.Ctx, cacheKey(mode), payload, 0).Err(); err != nil {
		fmt.Printf("警告: 写入排行榜缓存失败: %v\n", err)
	}
}

// InvalidateCache 丢弃两种排序的缓存。
// 每场对战落库后和菜品删除后都应调用，下一次查询会重建。
func InvalidateCache() {
	if !database.IsRedisHealthy() {
		return
	}
	if err := database.RDB.Del(database.Ctx, cacheKeyWins, cacheKeyWinPct).Err(); err != nil {
		fmt.Printf("警告: 失效排行榜缓存失败: %v\n", err)
	}
}

// RefreshCache 从权威数据库重建两种排序的缓存。
// Redis重启后的热重建也走这里。
func RefreshCache() error {
	for _, mode := range []SortMode{SortByWins, SortByWinPct} {
		entries, err := globalService.Build(mode)
		if err != nil {
			return fmt.Errorf("无法重建排行榜缓存 (%s): %w", mode, err)
		}
		setCached(mode, entries)
	}
	return nil
}

// StartCacheRefresher 启动后台刷新器，定期把最新的排行榜预热进缓存
func StartCacheRefresher(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("排行榜缓存刷新器已启动。")

	for {
		if err := handle.Sleep(refreshInterval); err != nil {
			fmt.Println("排行榜缓存刷新器: 收到停机信号，退出。")
			return
		}
		if !database.IsRedisHealthy() {
			continue
		}
		if err := RefreshCache(); err != nil {
			fmt.Printf("警告: 排行榜缓存刷新失败: %v\n", err)
		}
	}
}
