package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// テーブル確保とチェックアウトのHTTP
type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	tableUC    *usecase.TableUsecase
}

// DI
func NewCheckoutHandler(checkoutUC *usecase.CheckoutUsecase, tableUC *usecase.TableUsecase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: checkoutUC,
		tableUC:    tableUC,
	}
}

type CheckoutRequest struct {
	TableNumber int `json:"tableNumber"`
}

type TableListResponse struct {
	Tables []usecase.TableView `json:"tables"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/user")
	g.Use(middleware.RequireAuth())

	g.GET("/tables", h.listTables)
	g.POST("/checkout", h.checkout)
}

// GET /user/tables
func (h *CheckoutHandler) listTables(c echo.Context) error {
	tables, err := h.tableUC.ListFree(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, TableListResponse{Tables: tables})
}

// POST /user/checkout
func (h *CheckoutHandler) checkout(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}
	if req.TableNumber < 1 {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid table number"})
	}

	if err := h.checkoutUC.Checkout(c.Request().Context(), user.ID, req.TableNumber); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: usecase.MsgCheckoutSuccess})
}
