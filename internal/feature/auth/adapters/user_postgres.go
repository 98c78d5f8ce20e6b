// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
)

// pgUniqueViolation はPostgresの一意制約違反を示すSQLSTATEコードです。
const pgUniqueViolation = "23505"

// userPostgres はUserRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// SQLSTATE 23505: ユニークキーの重複エントリ
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return usecase.ErrEmailAlreadyExists
		}
		// GORMのエラー変換が有効な場合（テストのsqlite等）
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
