package router

import (
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	"todo_backend/internal/platform/http/handler"
	jwtmw "todo_backend/internal/platform/jwt"
)

// NewRouter はアプリケーションの全ルートを構成したgin.Engineを返します。
func NewRouter(authHandler *authhandler.AuthHandler, tasks *taskhandler.TaskHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	// 新規ユーザー登録（トークン発行）
	api.POST("/register", authHandler.Register)
	// ログイン（トークン発行）
	api.POST("/login", authHandler.Login)

	// 認証必須のルート
	// トークン検証後、パスの:user_idとトークンのuser_idの一致を検証する
	owned := api.Group("/:user_id", jwtmw.AuthRequired([]byte(jwtSecret)), jwtmw.RequireOwnUser())
	{
		owned.GET("/tasks", tasks.List)
		owned.POST("/tasks", tasks.Create)
		owned.GET("/tasks/:id", tasks.Get)
		owned.PUT("/tasks/:id", tasks.Update)
		owned.DELETE("/tasks/:id", tasks.Delete)
		owned.PATCH("/tasks/:id/complete", tasks.Complete)
	}

	return r
}
