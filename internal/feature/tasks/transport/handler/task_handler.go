// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/transport/http/dto"
	"todo_backend/internal/feature/tasks/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TaskUsecase interface {
	Create(ctx context.Context, userID uint, title, description string) (*entity.Task, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Task, error)
	Get(ctx context.Context, taskID, userID uint) (*entity.Task, error)
	Update(ctx context.Context, taskID, userID uint, title, description *string) (*entity.Task, error)
	SetCompletion(ctx context.Context, taskID, userID uint, completed bool) (*entity.Task, error)
	Delete(ctx context.Context, taskID, userID uint) error
}

// TaskHandler はタスク操作のHTTPリクエストを処理します。
// 認証・所有者チェックはミドルウェア（AuthRequired / RequireOwnUser）で完了している前提で、
// ここでは入力のバインド、ユースケース呼び出し、結果のステータスコード変換のみを行います。
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler はTaskHandlerの新しいインスタンスを生成します。
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// principal は検証済みユーザーIDをコンテキストから取り出します。
// ミドルウェアを通過していれば必ず存在します。
func principal(c *gin.Context) (uint, bool) {
	id, ok := jwtmw.PrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
	}
	return id, ok
}

// taskID は:idパスパラメータを解釈します。
// 数値でないIDはどのタスクとも一致しないため404を返します。
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrTaskNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

// List は認証済みユーザーのタスク一覧を返します。
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	tasks, err := h.tasks.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("task list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create は新しいタスクを作成するAPIです。
// - 空白のみのタイトルは422を返却
// - 成功時は作成されたタスクを200で返却
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task create validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTitle) {
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: usecase.ErrEmptyTitle.Error()})
			return
		}
		slog.Error("task create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Get は単一タスクを返します。存在しない場合と他ユーザー所有の場合は、どちらも404です。
func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}
	task, err := h.tasks.Get(c.Request.Context(), id, userID)
	if err != nil {
		h.writeTaskError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update はタスクを部分更新するAPIです。リクエストに含まれるフィールドのみ変更します。
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), id, userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTitle) {
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: usecase.ErrEmptyTitle.Error()})
			return
		}
		h.writeTaskError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Complete はタスクの完了フラグを設定するAPIです。同じ値の再設定も成功として扱います。
func (h *TaskHandler) Complete(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req dto.CompleteTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task complete validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	task, err := h.tasks.SetCompletion(c.Request.Context(), id, userID, *req.Completed)
	if err != nil {
		h.writeTaskError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete はタスクを削除するAPIです。
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), id, userID); err != nil {
		h.writeTaskError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Task deleted successfully"})
}

// writeTaskError はユースケースのエラーをHTTPステータスに変換します。
func (h *TaskHandler) writeTaskError(c *gin.Context, err error, userID uint) {
	if errors.Is(err, usecase.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrTaskNotFound.Error()})
		return
	}
	slog.Error("task operation failed", "error", err, "user_id", userID)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}
