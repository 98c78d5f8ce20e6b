// Package dto はtasksフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateTaskReq は POST /api/:user_id/tasks のリクエストボディを表します。
// タイトルの空チェックはusecase側で行うため、bindingタグでは必須にしていません
// （空タイトルは400ではなく422で報告する）。
type CreateTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskReq は PUT /api/:user_id/tasks/:id のリクエストボディを表します。
// nilのフィールドは「変更しない」を意味します。
type UpdateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CompleteTaskReq は PATCH /api/:user_id/tasks/:id/complete のリクエストボディを表します。
// ポインタにすることでfalseの明示指定とフィールド欠落を区別します。
type CompleteTaskReq struct {
	Completed *bool `json:"completed" binding:"required"`
}
