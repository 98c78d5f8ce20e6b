// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"todo_backend/internal/feature/auth/domain/entity"
)

// bcryptMaxPasswordBytes はbcryptが評価するパスワードの最大バイト長です。
// これを超える入力は切り詰めてからハッシュ化します（bcryptの仕様上の制限）。
const bcryptMaxPasswordBytes = 72

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// truncateForBcrypt はbcryptの上限を超えるパスワードを72バイトに切り詰めます。
func truncateForBcrypt(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxPasswordBytes {
		b = b[:bcryptMaxPasswordBytes]
	}
	return b
}

// Register は新規ユーザーを登録し、アクセストークンを発行します。
// メールアドレスが既に使われている場合はErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, email, name, password string) (string, error) {
	// 重複チェック（一意制約違反もadapters側でErrEmailAlreadyExistsに変換される）
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword(truncateForBcrypt(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Name: name, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// bcrypt自体の検証ルーチンで比較する（定数時間比較）
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), truncateForBcrypt(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
