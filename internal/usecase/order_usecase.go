package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"farmmarket/internal/domain/model"
	"farmmarket/internal/notification"
	repo "farmmarket/internal/repository"
)

// 6桁の受け取り確認コードを作る約束。予測不能であること
type CodeGenerator interface {
	NewCode() (string, error)
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type OrderUsecase struct {
	tx        repo.TransactionManager
	customers repo.CustomerRepository
	couriers  repo.CourierRepository
	farmers   repo.FarmerRepository
	products  repo.ProductRepository
	orders    repo.OrderRepository
	codeGen   CodeGenerator
	idGen     IDGenerator
	clock     Clock
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	customers repo.CustomerRepository,
	couriers repo.CourierRepository,
	farmers repo.FarmerRepository,
	products repo.ProductRepository,
	orders repo.OrderRepository,
	codeGen CodeGenerator,
	idGen IDGenerator,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		tx:        tx,
		customers: customers,
		couriers:  couriers,
		farmers:   farmers,
		products:  products,
		orders:    orders,
		codeGen:   codeGen,
		idGen:     idGen,
		clock:     clock,
	}
}

type PlaceOrderInput struct {
	ProductID     int64
	Quantity      int64
	TotalAmount   int64
	PaymentMethod string
	Location      string
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (model.Order, error) {
	if userID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}
	if in.Quantity <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}
	if in.TotalAmount <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "totalAmount must be > 0")
	}
	if strings.TrimSpace(in.Location) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "location required")
	}

	method := model.PaymentMethod(strings.ToUpper(strings.TrimSpace(in.PaymentMethod)))
	if method != model.PaymentMethodCash && method != model.PaymentMethodOnline {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid paymentMethod")
	}

	//呼び出し元のプロフィール確認
	customer, err := u.customers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "customer not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品は農家を引くためだけに見る。金額・数量の再検証はしない
	product, err := u.products.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ONLINEは注文前に決済済み扱い
	paymentStatus := model.PaymentStatusPending
	if method == model.PaymentMethodOnline {
		paymentStatus = model.PaymentStatusCompleted
	}

	code, err := u.codeGen.NewCode()
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "code generation failed")
	}

	now := u.clock.Now()
	order := model.Order{
		CustomerID:    customer.ID,
		ProductID:     product.ID,
		FarmerID:      product.FarmerID,
		Quantity:      in.Quantity,
		TotalAmount:   in.TotalAmount,
		Status:        model.OrderStatusPending,
		PaymentStatus: paymentStatus,
		PaymentMethod: method,
		Location:      strings.TrimSpace(in.Location),
		IsAvailable:   true,
		DeliveryCode:  code,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		order.ID = orderID

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID: userID,
			Action:      "order.created",
			TargetType:  "order",
			TargetID:    orderID,
			CreatedAt:   now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	return order, nil
}

func (u *OrderUsecase) AssignCourier(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	courier, err := u.couriers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "courier not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()

	//アサインと集荷通知の積み込みは同一トランザクション
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		customer, err := r.Customers().FindByID(ctx, order.CustomerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "customer not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		user, err := r.Users().FindByID(ctx, customer.UserID)
		if err == repo.ErrUserNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//連絡先が無いままアサインすると通知が届かないので、データ不備として弾く
		if strings.TrimSpace(user.Email) == "" {
			return NewHTTPError(http.StatusBadRequest, "customer email missing")
		}

		product, err := r.Products().FindByID(ctx, order.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		farmer, err := r.Farmers().FindByID(ctx, order.FarmerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "farmer not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//未アサインの時だけ勝てる
		ok, err := r.Orders().AssignCourier(ctx, orderID, courier.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "order already assigned")
		}

		subject, body := notification.PickupMessage(notification.PickupDetails{
			Order:        order,
			ProductName:  product.Name,
			FarmerName:   farmer.Name,
			CourierName:  courier.Name,
			CourierPhone: courier.Phone,
		})

		if _, err := r.Notifications().Create(ctx, model.Notification{
			EventID:   u.idGen.NewID(),
			OrderID:   orderID,
			Kind:      model.NotificationOrderPickedUp,
			Recipient: user.Email,
			Subject:   subject,
			Body:      body,
			Status:    model.NotificationStatusPending,
			CreatedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID: userID,
			Action:      "order.courier_assigned",
			TargetType:  "order",
			TargetID:    orderID,
			CreatedAt:   now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

// VerifyDeliveryは受け取り確認コードを照合して注文を完了させる。
// 認証なし。orderId＋コードを持つ側＝受け取った本人という手渡しモデル
func (u *OrderUsecase) VerifyDelivery(ctx context.Context, orderID int64, submittedCode string) (string, error) {
	if orderID <= 0 {
		return "", NewHTTPError(http.StatusBadRequest, "invalid orderId")
	}

	now := u.clock.Now()
	message := "order delivered successfully"

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//コードは完全一致のみ
		if submittedCode != order.DeliveryCode {
			return NewHTTPError(http.StatusBadRequest, "invalid verification code")
		}

		//正しいコードでの再確認は成功扱い。通知は二度送らない
		if order.Status == model.OrderStatusCompleted {
			return nil
		}

		ok, err := r.Orders().MarkCompleted(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			//並行リクエストに先を越されたか、キャンセル済み
			latest, err := r.Orders().FindByID(ctx, orderID)
			if err == nil && latest.Status == model.OrderStatusCompleted {
				return nil
			}
			return NewHTTPError(http.StatusConflict, "order is not pending")
		}

		customer, err := r.Customers().FindByID(ctx, order.CustomerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "customer not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		user, err := r.Users().FindByID(ctx, customer.UserID)
		if err == repo.ErrUserNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		product, err := r.Products().FindByID(ctx, order.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		subject, body := notification.DeliveredMessage(order, product.Name, now)

		if _, err := r.Notifications().Create(ctx, model.Notification{
			EventID:   u.idGen.NewID(),
			OrderID:   orderID,
			Kind:      model.NotificationOrderDelivered,
			Recipient: user.Email,
			Subject:   subject,
			Body:      body,
			Status:    model.NotificationStatusPending,
			CreatedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			Action:     "order.delivered",
			TargetType: "order",
			TargetID:   orderID,
			CreatedAt:  now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return message, nil
}

// ListPickupLocationsは農家の拠点の文字列そのままでグルーピングする。
// 正規化はしない（"Pune"と"pune"は別グループ）
func (u *OrderUsecase) ListPickupLocations(ctx context.Context) (map[string][]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//農家はidセットでまとめて引く
	idSet := make(map[int64]struct{}, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		if _, ok := idSet[o.FarmerID]; !ok {
			idSet[o.FarmerID] = struct{}{}
			ids = append(ids, o.FarmerID)
		}
	}

	farmers, err := u.farmers.ListByIDs(ctx, ids)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	locations := make(map[int64]string, len(farmers))
	for _, f := range farmers {
		locations[f.ID] = f.Location
	}

	groups := make(map[string][]model.Order)
	for _, o := range orders {
		loc, ok := locations[o.FarmerID]
		if !ok {
			continue
		}
		groups[loc] = append(groups[loc], o)
	}
	return groups, nil
}

func (u *OrderUsecase) ListCustomerOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	customer, err := u.customers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return []model.Order{}, NewHTTPError(http.StatusNotFound, "customer not found")
	}
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orders.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *OrderUsecase) ListFarmerOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	farmer, err := u.farmers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return []model.Order{}, NewHTTPError(http.StatusNotFound, "farmer not found")
	}
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orders.ListByFarmerID(ctx, farmer.ID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}
