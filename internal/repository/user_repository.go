package repository

import (
	"context"

	"app/internal/domain/model"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。無ければnil。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	// メールからユーザーを1件取得する。無ければnil。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// 全ユーザーを登録日時の新しい順で取得
	ListAll(ctx context.Context) ([]model.User, error)
	// ロールの変更（USER→STAFFの昇格のみ）
	UpdateRole(ctx context.Context, userID int64, role model.Role) error
}
