// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// taskPostgres はTaskRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type taskPostgres struct {
	db *gorm.DB
}

// taskPostgresがTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*taskPostgres)(nil)

// NewTaskPostgres は指定されたgorm.DB接続でtaskPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTaskPostgres(db *gorm.DB) *taskPostgres {
	return &taskPostgres{db: db}
}

// Create はタスクをデータベースに追加します。
func (r *taskPostgres) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListByUser は指定されたユーザーのタスクをID昇順で返します。
func (r *taskPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByOwner は(id, userID)でタスクを取得します。
// 存在しない場合と所有者が異なる場合は、区別せずusecase.ErrTaskNotFoundを返します。
func (r *taskPostgres) FindByOwner(ctx context.Context, id, userID uint) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save は既存タスクの変更を永続化します。
func (r *taskPostgres) Save(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// DeleteByOwner は(id, userID)に一致するタスクを削除します。
// 対象行が存在しない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskPostgres) DeleteByOwner(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
