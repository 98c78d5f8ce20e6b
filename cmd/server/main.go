package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	taskadapters "todo_backend/internal/feature/tasks/adapters"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	taskusecase "todo_backend/internal/feature/tasks/usecase"
	"todo_backend/internal/platform/cache"
	"todo_backend/internal/platform/config"
	"todo_backend/internal/platform/db"
	jwtmw "todo_backend/internal/platform/jwt"
	platformredis "todo_backend/internal/platform/redis"
)

func main() {
	// .envがあれば読み込む（本番では環境変数を直接設定する）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// デフォルトシークレットのまま運用しないための注意喚起
	if cfg.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Redis（任意。接続できなければキャッシュなしで動作する）
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		rdb = nil
	} else if tmp, err := platformredis.NewClient(cfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(gormDB)
	taskRepo := taskadapters.NewTaskPostgres(gormDB)

	// タスク一覧をRedisキャッシュでラップ
	cachedTaskRepo := cache.NewCachingTaskRepository(rdb, cfg.TaskCacheTTL, taskRepo, "tasks")

	// Usecase
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.AccessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, generator)
	taskUC := taskusecase.NewTaskUsecase(cachedTaskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// ルータ生成
	r := router.NewRouter(authH, taskH, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
