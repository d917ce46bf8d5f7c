package handler

import (
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// tokenクッキーの寿命（3日）
const tokenCookieMaxAge = 3 * 24 * time.Hour

// 認証まわりのHTTP
type AuthHandler struct {
	uc           *usecase.AuthUsecase
	cookieSecure bool
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		cookieSecure: cfg.CookieSecure,
	}
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthStatusResponse struct {
	IsAuthenticated bool        `json:"isAuthenticated"`
	User            interface{} `json:"user"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/user/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)

	e.GET("/auth", h.status)
	e.POST("/logout", h.logout, middleware.RequireAuth())
}

// POST /user/auth/register
func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}

	token, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.setTokenCookie(c, token)
	return c.JSON(http.StatusOK, MessageResponse{Message: "User created!"})
}

// POST /user/auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}

	token, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.setTokenCookie(c, token)
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged in!"})
}

// GET /auth（匿名も200で返す）
func (h *AuthHandler) status(c echo.Context) error {
	if user, ok := middleware.CurrentUser(c); ok {
		return c.JSON(http.StatusOK, AuthStatusResponse{
			IsAuthenticated: true,
			User:            user,
		})
	}

	return c.JSON(http.StatusOK, AuthStatusResponse{
		IsAuthenticated: false,
		User:            nil,
	})
}

// POST /logout
func (h *AuthHandler) logout(c echo.Context) error {
	h.clearTokenCookie(c)
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// tokenをhttp-only/same-site-strictのクッキーでセット
func (h *AuthHandler) setTokenCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(tokenCookieMaxAge),
		MaxAge:   int(tokenCookieMaxAge.Seconds()),
	}
	c.SetCookie(cookie)
}

func (h *AuthHandler) clearTokenCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	}
	c.SetCookie(cookie)
}
