package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全レスポンス共通のmessageボディ
type MessageResponse struct {
	Message string `json:"message"`
}

// usecaseのHTTPErrorをレスポンスに変換する。
// 想定外のエラーは原因をログに残して500の汎用メッセージだけ返す。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status == http.StatusInternalServerError {
			c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
		}
		return c.JSON(he.Status, MessageResponse{Message: he.Message})
	}

	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
}
