package usecase

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(email string, password string, firstName string, lastName string) error
	ValidateLogin(email string, password string) error
}

type AuthUsecase struct {
	cfg       config.Config
	users     repository.UserRepository
	validator AuthValidator
}

func NewAuthUsecase(cfg config.Config, users repository.UserRepository, validator AuthValidator) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		validator: validator,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

// 会員登録。成功時はセッショントークンを返す。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (string, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(in.Email, in.Password, in.FirstName, in.LastName); err != nil {
		return "", NewHTTPError(http.StatusForbidden, err.Error())
	}

	//email重複チェック
	existing, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if existing != nil {
		return "", NewHTTPError(http.StatusBadRequest, "User with this email already exists")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	user := &model.User{
		Email:     in.Email,
		Password:  string(pwHash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      model.RoleUser,
	}

	if err := u.users.Create(ctx, user); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return u.signToken(user)
}

// ログイン。成功時はセッショントークンを返す。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := u.validator.ValidateLogin(in.Email, in.Password); err != nil {
		return "", NewHTTPError(http.StatusForbidden, err.Error())
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if user == nil {
		return "", NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	}

	return u.signToken(user)
}

// HS256で署名。期限はクッキー側のMaxAgeに任せ、expクレームは入れない。
func (u *AuthUsecase) signToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   time.Now().Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return signed, nil
}
