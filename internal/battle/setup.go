package battle

import (
	"fmt"

	"github.com/SlpAus/meal-max-backend/internal/meal"
	"github.com/SlpAus/meal-max-backend/internal/platform/config"
	"github.com/SlpAus/meal-max-backend/pkg/random"
)

// globalService 是进程内唯一的对战服务实例，每个进程只有一张候选席
var globalService *Service

// ConfigureModule 装配对战引擎：计分常量来自配置，随机源由调用方注入
func ConfigureModule(store meal.Store, rng random.Source, cfg config.BattleConfig) {
	resolver := NewResolver(cfg, rng)
	globalService = NewService(store, resolver, NewRoster())
	fmt.Println("对战引擎装配完成。")
}

// DefaultService 返回进程内共享的对战服务实例
func DefaultService() *Service {
	return globalService
}
