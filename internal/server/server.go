package server

import (
	"net/http"

	"app/internal/config"
	appmw "app/internal/middleware"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 各handlerが自分のルートを登録する約束
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// Newはechoを組み立てる。認証ミドルウェアは全ルート共通で、
// 匿名は素通しして許可判断は各ルートのRequireAuth/CheckRoleに任せる。
func New(cfg config.Config, users repository.UserRepository, handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedHosts,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.Use(appmw.AuthenticateJWT(cfg, users))

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	// 認証済みの疎通確認用
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Protected Hello World")
	}, appmw.RequireAuth())

	return e
}
