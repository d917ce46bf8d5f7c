package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文履歴のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderListResponse struct {
	Orders []usecase.OrderView `json:"orders"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/user/history", h.history, middleware.RequireAuth())
}

// GET /user/history
func (h *OrderHandler) history(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
	}

	orders, err := h.uc.History(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}
