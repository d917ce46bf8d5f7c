package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カート操作のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddToCartRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
}

type UpdateCartRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/user")
	g.Use(middleware.RequireAuth())

	g.POST("/add-to-cart", h.addToCart)
	g.POST("/update-cart", h.updateCart)
	g.GET("/cart", h.getCart)
}

// POST /user/add-to-cart
func (h *CartHandler) addToCart(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}

	if err := h.uc.AddToCart(c.Request().Context(), user.ID, usecase.AddToCartInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	}); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item added to cart"})
}

// POST /user/update-cart（quantity 0は削除）
func (h *CartHandler) updateCart(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
	}

	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}

	msg, err := h.uc.UpdateCart(c.Request().Context(), user.ID, usecase.UpdateCartInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// GET /user/cart
func (h *CartHandler) getCart(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
