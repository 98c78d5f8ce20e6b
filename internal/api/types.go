// Package api はAPI共通のレスポンス型を定義します。
package api

// ErrorResponse はエラー時の共通レスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は処理結果メッセージのみを返すレスポンスボディです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はアクセストークン発行時のレスポンスボディです。
// token_typeは常に"bearer"です。
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
