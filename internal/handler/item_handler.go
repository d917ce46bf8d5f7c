package handler

import (
	"net/http"

	"app/internal/middleware"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 公開カタログのHTTP
type ItemHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewItemHandler(uc *usecase.CatalogUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

type ItemListResponse struct {
	Items []repo.ItemWithCategory `json:"items"`
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/items", h.list, middleware.RequireAuth())
}

// GET /items
func (h *ItemHandler) list(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ItemListResponse{Items: items})
}
