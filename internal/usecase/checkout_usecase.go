package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// チェックアウトの失敗理由。クライアントには500 + 理由テキストで返す。
const (
	MsgTableNotFound   = "Table does not exist"
	MsgTableOccupied   = "Table is assigned to another user"
	MsgEmptyCart       = "No items in the cart"
	MsgCheckoutSuccess = "Checkout successful"
)

// チェックアウト：カートを注文に変換してテーブルを確保する。
// 全ステップが1つのDBトランザクションで成功するか、何も起きないか。
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, tableNumber int) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if tableNumber < 1 {
		return NewHTTPError(http.StatusForbidden, "Invalid table number")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// テーブル行をFOR UPDATEで取る。
		// 同じ空きテーブルへの同時チェックアウトはここで直列化される。
		table, err := r.Tables().FindByNumberForUpdate(ctx, tableNumber)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusInternalServerError, MsgTableNotFound)
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		// 他人が占有していたら失敗
		if table.UserID != nil && *table.UserID != userID {
			return NewHTTPError(http.StatusInternalServerError, MsgTableOccupied)
		}

		// カートと価格を同一トランザクション内で読む
		cartRows, err := r.CartItems().ListWithItemByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
		if len(cartRows) == 0 {
			return NewHTTPError(http.StatusInternalServerError, MsgEmptyCart)
		}

		var amount int64 = 0
		orderItems := make([]model.OrderItem, 0, len(cartRows))
		for _, row := range cartRows {
			amount += row.Quantity * row.Price
			orderItems = append(orderItems, model.OrderItem{
				ItemID:   row.ItemID,
				Quantity: row.Quantity,
			})
		}

		// 空席なら自分に割り当てる。既に自分のテーブルなら何もしない。
		if table.UserID == nil {
			if err := r.Tables().AssignUser(ctx, tableNumber, userID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}
		}

		// 注文＋明細スナップショットを作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:      userID,
			TableNumber: tableNumber,
			Amount:      amount,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		// カートを空にする
		if err := r.CartItems().DeleteAllByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		return nil
	})
}
