package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/meal-max-backend/api"
	"github.com/SlpAus/meal-max-backend/internal/battle"
	"github.com/SlpAus/meal-max-backend/internal/leaderboard"
	"github.com/SlpAus/meal-max-backend/internal/meal"
	"github.com/SlpAus/meal-max-backend/internal/platform/config"
	"github.com/SlpAus/meal-max-backend/internal/platform/database"
	"github.com/SlpAus/meal-max-backend/internal/platform/health"
	"github.com/SlpAus/meal-max-backend/internal/platform/shutdown"
	"github.com/SlpAus/meal-max-backend/pkg/lifecycle"
	"github.com/SlpAus/meal-max-backend/pkg/random"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败，无法启动: %v", err))
	}

	// 2. 初始化权威数据库和Redis缓存
	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)
	health.InitializeRunID()

	// 3. 装配各业务模块
	if err := meal.PrimeDB(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}
	battle.ConfigureModule(meal.DefaultStore(), random.NewDefault(), cfg.Battle)
	leaderboard.ConfigureModule(meal.DefaultStore())

	// 对战落库和菜品删除都会改变排行榜，挂接缓存失效
	battle.DefaultService().SetAfterBattleHook(leaderboard.InvalidateCache)
	meal.SetAfterDeleteHook(leaderboard.InvalidateCache)

	// 4. 启动后台服务
	manager := lifecycle.NewManager()

	healthHandle, err := manager.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(err)
	}
	go health.StartRedisHealthCheck(healthHandle)

	refresherHandle, err := manager.NewServiceHandle("leaderboard-cache-refresher")
	if err != nil {
		panic(err)
	}
	go leaderboard.StartCacheRefresher(refresherHandle)

	// 5. 创建Gin引擎并配置CORS
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. 注册API路由
	api.SetupRoutes(r)

	// 7. 启动服务器并等待停机信号
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(manager)
	coordinator.ListenForSignalsAndShutdown(server)
}
