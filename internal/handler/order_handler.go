package handler

import (
	"net/http"
	"strconv"

	"farmmarket/internal/config"
	"farmmarket/internal/domain/model"
	"farmmarket/internal/middleware"
	"farmmarket/internal/repository"
	"farmmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 注文APIのリクエストボディはフロントとの既存契約に合わせてcamelCase
type OrderCreateRequest struct {
	ProductID     int64  `json:"productId"`
	TotalAmount   int64  `json:"totalAmount"`
	Quantity      int64  `json:"quantity"`
	PaymentMethod string `json:"paymentMethod"`
	Location      string `json:"location"`
}

type OrderDeliverRequest struct {
	OrderID      int64  `json:"orderId"`
	RandomNumber string `json:"randomNumber"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	authMW := middleware.AuthJWT(cfg)
	tvMW := middleware.TokenVersionGuard(userRepo)
	customerMW := middleware.RoleGuard(model.RoleCustomer)
	courierMW := middleware.RoleGuard(model.RoleCourier)

	//集荷場所の一覧と配達確認は認証なし（手渡しコードのモデル）
	e.GET("/orders", h.pickupLocations)
	e.POST("/orders/deliver", h.deliver)

	e.POST("/orders", h.create, authMW, customerMW, tvMW)
	e.GET("/orders/customer", h.listMine, authMW, customerMW, tvMW)
	e.PUT("/orders/:id/assign", h.assign, authMW, courierMW, tvMW)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		ProductID:     req.ProductID,
		TotalAmount:   req.TotalAmount,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
		Location:      req.Location,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "order placed successfully",
		"order":   order,
		"status":  order.Status,
	})
}

func (h *OrderHandler) assign(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.AssignCourier(c.Request().Context(), userID, orderID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "order assigned successfully",
		"success": true,
	})
}

func (h *OrderHandler) pickupLocations(c echo.Context) error {
	groups, err := h.uc.ListPickupLocations(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pickupLocations": groups,
	})
}

func (h *OrderHandler) listMine(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orders, err := h.uc.ListCustomerOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

func (h *OrderHandler) deliver(c echo.Context) error {
	var req OrderDeliverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	message, err := h.uc.VerifyDelivery(c.Request().Context(), req.OrderID, req.RandomNumber)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": message,
	})
}
