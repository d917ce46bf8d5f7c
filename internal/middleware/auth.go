package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// tokenクッキー名。handler側のセット/クリアと共有する。
const TokenCookieName = "token"

// contextキー（model.SanitizedUser）
const CtxUserKey = "current_user"

type messageResponse struct {
	Message string `json:"message"`
}

// クッキーのJWTを検証してユーザーをcontextに載せる。
// クッキー無し・検証失敗・ユーザー消滅はいずれも匿名として続行し、
// 許可の判断は後段のRequireAuth/CheckRoleに任せる。
func AuthenticateJWT(cfg config.Config, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				// クッキー無しは匿名
				return next(c)
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				// 署名不正は匿名扱い。原因だけはサーバー側に残す。
				c.Logger().Warnf("token verification failed: %v", err)
				return next(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return next(c)
			}

			userID, err := parseUserID(claims["sub"])
			if err != nil || userID <= 0 {
				return next(c)
			}

			//subをDBの生きたユーザーに解決する
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				c.Logger().Errorf("user lookup failed: %v", err)
				return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
			}
			if user == nil {
				// tokenは正しいがユーザーが消えている=>匿名
				return next(c)
			}

			c.Set(CtxUserKey, user.Sanitize())
			return next(c)
		}
	}
}

// contextから解決済みユーザーを取り出す
func CurrentUser(c echo.Context) (model.SanitizedUser, bool) {
	u, ok := c.Get(CtxUserKey).(model.SanitizedUser)
	return u, ok
}

// 認証済みでなければ401
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentUser(c); !ok {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
			}
			return next(c)
		}
	}
}

// 許可リストにroleが含まれるか
func RoleAllowed(role model.Role, allowed []model.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// 解決済みユーザーのroleが許可リストに無ければ403
func CheckRole(allowed ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
			}

			if !RoleAllowed(u.Role, allowed) {
				return c.JSON(http.StatusForbidden, messageResponse{Message: "Forbidden"})
			}

			return next(c)
		}
	}
}

// subをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}
