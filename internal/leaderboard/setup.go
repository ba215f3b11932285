package leaderboard

import (
	"github.com/SlpAus/meal-max-backend/internal/meal"
)

// globalService 是进程内共享的排行榜服务实例
var globalService *Service

// ConfigureModule 装配排行榜服务
func ConfigureModule(store meal.Store) {
	globalService = NewService(store)
}

// DefaultService 返回进程内共享的排行榜服务实例
func DefaultService() *Service {
	return globalService
}
