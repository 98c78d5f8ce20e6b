// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"todo_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// すべての検索・更新・削除は(タスクID, ユーザーID)でスコープされます。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TaskRepository interface {
	// Create は新しいタスクをストレージに永続化します。
	Create(ctx context.Context, task *entity.Task) error

	// ListByUser は指定されたユーザーが所有するすべてのタスクをID昇順で返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Task, error)

	// FindByOwner は(id, userID)に一致するタスクを取得します。
	// タスクが存在しない、または別のユーザーが所有する場合、ErrTaskNotFoundを返します。
	FindByOwner(ctx context.Context, id, userID uint) (*entity.Task, error)

	// Save は既存タスクの変更を永続化します。
	Save(ctx context.Context, task *entity.Task) error

	// DeleteByOwner は(id, userID)に一致するタスクを削除します。
	// 削除対象が存在しない場合、ErrTaskNotFoundを返します。
	DeleteByOwner(ctx context.Context, id, userID uint) error
}

// taskUsecase はタスク管理のビジネスロジックを実装します。
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase はtaskUsecaseの新しいインスタンスを生成します。
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// Create は新しいタスクを作成します。
// タイトルが空白のみの場合はErrEmptyTitleを返します。タイトルは前後の空白を除いて保存されます。
func (u *taskUsecase) Create(ctx context.Context, userID uint, title, description string) (*entity.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := &entity.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListByUser は指定されたユーザーのタスク一覧をID昇順で返します。
func (u *taskUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	return u.tasks.ListByUser(ctx, userID)
}

// Get は(taskID, userID)に一致するタスクを返します。
// 存在しない場合と所有者が異なる場合は、どちらもErrTaskNotFoundになります。
func (u *taskUsecase) Get(ctx context.Context, taskID, userID uint) (*entity.Task, error) {
	return u.tasks.FindByOwner(ctx, taskID, userID)
}

// Update はタスクを部分更新します。nilのフィールドは変更されません。
// タイトルを更新する場合、空白のみの値はErrEmptyTitleで拒否されます。
func (u *taskUsecase) Update(ctx context.Context, taskID, userID uint, title, description *string) (*entity.Task, error) {
	task, err := u.tasks.FindByOwner(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrEmptyTitle
		}
		task.Title = trimmed
	}
	if description != nil {
		task.Description = *description
	}

	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SetCompletion はタスクの完了フラグを設定します。同じ値を再設定しても冪等です。
func (u *taskUsecase) SetCompletion(ctx context.Context, taskID, userID uint, completed bool) (*entity.Task, error) {
	task, err := u.tasks.FindByOwner(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Completed = completed
	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete は(taskID, userID)に一致するタスクを削除します。
func (u *taskUsecase) Delete(ctx context.Context, taskID, userID uint) error {
	return u.tasks.DeleteByOwner(ctx, taskID, userID)
}
