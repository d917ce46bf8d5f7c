package validator_test

import (
	"testing"

	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	v := validator.NewAuthValidator()

	cases := []struct {
		name      string
		email     string
		password  string
		firstName string
		lastName  string
		want      error
	}{
		{"ok", "taro@example.com", "secret123", "Taro", "Yamada", nil},
		{"email without at", "taro.example.com", "secret123", "Taro", "Yamada", validator.ErrInvalidEmail},
		{"email without domain dot", "taro@example", "secret123", "Taro", "Yamada", validator.ErrInvalidEmail},
		{"email with space", "ta ro@example.com", "secret123", "Taro", "Yamada", validator.ErrInvalidEmail},
		{"empty email", "", "secret123", "Taro", "Yamada", validator.ErrInvalidEmail},
		{"password 5 chars", "taro@example.com", "12345", "Taro", "Yamada", validator.ErrPasswordTooShort},
		{"password 6 chars ok", "taro@example.com", "123456", "Taro", "Yamada", nil},
		{"blank first name", "taro@example.com", "secret123", "   ", "Yamada", validator.ErrFirstNameRequired},
		{"blank last name", "taro@example.com", "secret123", "Taro", "", validator.ErrLastNameRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateRegister(tc.email, tc.password, tc.firstName, tc.lastName)
			assert.Equal(t, tc.want, err)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator()

	assert.NoError(t, v.ValidateLogin("taro@example.com", "secret123"))
	assert.Equal(t, validator.ErrInvalidEmail, v.ValidateLogin("nope", "secret123"))
	assert.Equal(t, validator.ErrPasswordTooShort, v.ValidateLogin("taro@example.com", "123"))
}
