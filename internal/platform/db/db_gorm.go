// Package db はGORMによるデータベース接続を提供します。
package db

import (
	"fmt"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	tasksentity "todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/platform/config"
)

// Open はPostgresへの接続プールを生成し、スキーマをマイグレーションします。
// 接続はプロセス起動時に一度だけ生成し、各リポジトリに注入します。
func Open(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gpostgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// マイグレーション（User, Task）
	if err := db.AutoMigrate(
		&authentity.User{},
		&tasksentity.Task{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return db, nil
}
