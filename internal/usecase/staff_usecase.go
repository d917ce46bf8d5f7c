package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// スタッフ向けのユーザー管理
type StaffUsecase struct {
	users repo.UserRepository
}

func NewStaffUsecase(users repo.UserRepository) *StaffUsecase {
	return &StaffUsecase{users: users}
}

// 全ユーザー一覧（登録日時の新しい順。パスワードはjsonに出ない）
func (u *StaffUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return users, nil
}

// USER→STAFFへの昇格。降格はしない。
func (u *StaffUsecase) PromoteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusForbidden, "Invalid user id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if user == nil {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}

	if user.Role == model.RoleStaff {
		return NewHTTPError(http.StatusBadRequest, "User is already a staff")
	}

	if err := u.users.UpdateRole(ctx, userID, model.RoleStaff); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return nil
}
