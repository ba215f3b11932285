package meal

import (
	"fmt"

	"github.com/SlpAus/meal-max-backend/internal/platform/database"
)

// defaultStore 是进程内共享的仓库实例，供handler和其他模块使用
var defaultStore Store

// afterDelete 在一道菜被软删除后调用，用于失效排行榜缓存
var afterDelete func()

// SetAfterDeleteHook 注册菜品删除后的回调
func SetAfterDeleteHook(hook func()) {
	afterDelete = hook
}

// PrimeDB 负责初始化meal模块的数据库表结构和仓库实例
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Meal{}); err != nil {
		return fmt.Errorf("无法迁移meal表: %w", err)
	}
	fmt.Println("Meal数据库表迁移成功。")

	defaultStore = NewStore(database.DB)
	return nil
}

// DefaultStore 返回进程内共享的仓库实例
func DefaultStore() Store {
	return defaultStore
}
