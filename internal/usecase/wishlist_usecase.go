package usecase

import (
	"context"
	"net/http"

	"farmmarket/internal/domain/model"
	repo "farmmarket/internal/repository"
)

type WishlistUsecase struct {
	customers repo.CustomerRepository
	products  repo.ProductRepository
	wishlist  repo.WishlistRepository
}

// DI
func NewWishlistUsecase(
	customers repo.CustomerRepository,
	products repo.ProductRepository,
	wishlist repo.WishlistRepository,
) *WishlistUsecase {
	return &WishlistUsecase{
		customers: customers,
		products:  products,
		wishlist:  wishlist,
	}
}

func (u *WishlistUsecase) Add(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	customer, err := u.customers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "customer not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//存在しない商品は追加できない
	if _, err := u.products.FindByID(ctx, productID); err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	} else if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.wishlist.Add(ctx, model.WishlistItem{
		CustomerID: customer.ID,
		ProductID:  productID,
	})
	if err == repo.ErrDuplicate {
		return NewHTTPError(http.StatusConflict, "already in wishlist")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *WishlistUsecase) List(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	if userID <= 0 {
		return []model.WishlistItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	customer, err := u.customers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return []model.WishlistItem{}, NewHTTPError(http.StatusNotFound, "customer not found")
	}
	if err != nil {
		return []model.WishlistItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.wishlist.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return []model.WishlistItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *WishlistUsecase) Remove(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	customer, err := u.customers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "customer not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.wishlist.Remove(ctx, customer.ID, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not in wishlist")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
