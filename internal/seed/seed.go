package seed

import (
	"context"
	"errors"
	"fmt"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 起動時に物理テーブル1..Nを用意する。既存分はそのまま。
func Tables(ctx context.Context, cfg config.Config, tables repo.TableRepository) error {
	for n := 1; n <= cfg.SeedTables; n++ {
		_, err := tables.FindByNumber(ctx, n)
		if err == nil {
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("seed tables: %w", err)
		}

		if _, err := tables.Create(ctx, model.Table{Number: n}); err != nil {
			return fmt.Errorf("seed tables: %w", err)
		}
	}
	return nil
}

// 環境変数で指定された初期スタッフアカウントを用意する。
func Staff(ctx context.Context, cfg config.Config, users repo.UserRepository) error {
	if cfg.StaffEmail == "" || cfg.StaffPassword == "" {
		return nil
	}

	existing, err := users.FindByEmail(ctx, cfg.StaffEmail)
	if err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}
	if existing != nil {
		return nil
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}

	staff := &model.User{
		Email:     cfg.StaffEmail,
		Password:  string(pwHash),
		FirstName: "Staff",
		LastName:  "User",
		Role:      model.RoleStaff,
	}
	if err := users.Create(ctx, staff); err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}

	return nil
}
