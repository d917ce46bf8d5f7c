package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	repo "app/internal/repository"
)

// 注文の参照と完了処理
type OrderUsecase struct {
	tx    repo.TransactionManager
	users repo.UserRepository
}

func NewOrderUsecase(tx repo.TransactionManager, users repo.UserRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, users: users}
}

type OrderItemView struct {
	Quantity int64         `json:"quantity"`
	Item     OrderItemName `json:"item"`
}

type OrderItemName struct {
	Name string `json:"name"`
}

type OrderUserView struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type OrderView struct {
	ID          int64           `json:"id"`
	TableNumber int             `json:"tableNumber"`
	User        *OrderUserView  `json:"user,omitempty"`
	OrderItems  []OrderItemView `json:"orderItems"`
	Amount      int64           `json:"amount"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// 本人の注文履歴（未完了が先、次に新しい順）
func (u *OrderUsecase) History(ctx context.Context, userID int64) ([]OrderView, error) {
	var out []OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		out = make([]OrderView, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListWithNameByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}

			out = append(out, OrderView{
				ID:          o.ID,
				TableNumber: o.TableNumber,
				OrderItems:  toOrderItemViews(items),
				Amount:      o.Amount,
				Completed:   o.Completed,
				CreatedAt:   o.CreatedAt,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderView{}, err
	}
	return out, nil
}

// 全注文一覧（スタッフ用、注文者名込み）
func (u *OrderUsecase) ListAll(ctx context.Context) ([]OrderView, error) {
	var out []OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAll(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		out = make([]OrderView, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListWithNameByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}

			view := OrderView{
				ID:          o.ID,
				TableNumber: o.TableNumber,
				OrderItems:  toOrderItemViews(items),
				Amount:      o.Amount,
				Completed:   o.Completed,
				CreatedAt:   o.CreatedAt,
			}

			user, err := u.users.FindByID(ctx, o.UserID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}
			if user != nil {
				view.User = &OrderUserView{
					FirstName: user.FirstName,
					LastName:  user.LastName,
				}
			}

			out = append(out, view)
		}
		return nil
	})

	if err != nil {
		return []OrderView{}, err
	}
	return out, nil
}

// 注文を完了にして、そのテーブルを解放する。1トランザクション。
func (u *OrderUsecase) CompleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusForbidden, "Invalid order id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		if err := r.Orders().SetCompleted(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		// テーブルを空席に戻す
		if err := r.Tables().ClearUser(ctx, order.TableNumber); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		return nil
	})
}

func toOrderItemViews(items []repo.OrderItemWithName) []OrderItemView {
	views := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		views = append(views, OrderItemView{
			Quantity: it.Quantity,
			Item:     OrderItemName{Name: it.ItemName},
		})
	}
	return views
}
