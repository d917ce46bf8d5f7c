package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// スタッフ向け管理API
type StaffHandler struct {
	catalogUC *usecase.CatalogUsecase
	orderUC   *usecase.OrderUsecase
	staffUC   *usecase.StaffUsecase
}

// DI
func NewStaffHandler(catalogUC *usecase.CatalogUsecase, orderUC *usecase.OrderUsecase, staffUC *usecase.StaffUsecase) *StaffHandler {
	return &StaffHandler{
		catalogUC: catalogUC,
		orderUC:   orderUC,
		staffUC:   staffUC,
	}
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	CategoryID  int64  `json:"categoryId"`
}

type CompleteStatusRequest struct {
	ID int64 `json:"id"`
}

type PromoteUserRequest struct {
	ID int64 `json:"id"`
}

type CategoryListResponse struct {
	Categories []model.Category `json:"categories"`
}

type UserListResponse struct {
	Users []model.User `json:"users"`
}

func (h *StaffHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/staff")
	g.Use(middleware.RequireAuth())

	staffOnly := middleware.CheckRole(model.RoleStaff)

	g.GET("/categories", h.listCategories, staffOnly)
	g.GET("/users", h.listUsers, staffOnly)
	g.GET("/get-orders", h.listOrders, staffOnly)
	g.POST("/create-item", h.createItem, staffOnly)
	g.DELETE("/delete-item/:id", h.deleteItem, staffOnly)
	g.POST("/complete-status", h.completeStatus, staffOnly)

	// 昇格はログインのみ必須（ロールガード無し）
	g.POST("/promote-user", h.promoteUser)
}

// GET /staff/categories
func (h *StaffHandler) listCategories(c echo.Context) error {
	cats, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CategoryListResponse{Categories: cats})
}

// GET /staff/users
func (h *StaffHandler) listUsers(c echo.Context) error {
	users, err := h.staffUC.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, UserListResponse{Users: users})
}

// GET /staff/get-orders
func (h *StaffHandler) listOrders(c echo.Context) error {
	orders, err := h.orderUC.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}

// POST /staff/create-item
func (h *StaffHandler) createItem(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}

	if err := h.catalogUC.CreateItem(c.Request().Context(), usecase.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	}); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item created!"})
}

// DELETE /staff/delete-item/:id
func (h *StaffHandler) deleteItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid item id"})
	}

	if err := h.catalogUC.DeleteItem(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item deleted!"})
}

// POST /staff/complete-status
func (h *StaffHandler) completeStatus(c echo.Context) error {
	var req CompleteStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}

	if err := h.orderUC.CompleteOrder(c.Request().Context(), req.ID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order status updated!"})
}

// POST /staff/promote-user
func (h *StaffHandler) promoteUser(c echo.Context) error {
	var req PromoteUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, MessageResponse{Message: "Invalid request body"})
	}

	if err := h.staffUC.PromoteUser(c.Request().Context(), req.ID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "User promoted!"})
}
