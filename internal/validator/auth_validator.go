package validator

import (
	"errors"
	"regexp"
	"strings"

	"app/internal/usecase"
)

var (
	ErrInvalidEmail      = errors.New("Invalid email")
	ErrPasswordTooShort  = errors.New("Password must be at least 6 characters")
	ErrFirstNameRequired = errors.New("First name is required")
	ErrLastNameRequired  = errors.New("Last name is required")
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(email string, password string, firstName string, lastName string) error {
	email = strings.TrimSpace(email)

	if !isEmailLike(email) {
		return ErrInvalidEmail
	}

	// パスワード最低文字数（6）
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	if strings.TrimSpace(firstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(lastName) == "" {
		return ErrLastNameRequired
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(email string, password string) error {
	email = strings.TrimSpace(email)

	if !isEmailLike(email) {
		return ErrInvalidEmail
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
