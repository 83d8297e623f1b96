package service

import (
	"context"
	"fmt"
	"testing"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPaise(t *testing.T) {
	assert.Equal(t, int64(100000), ToPaise(dec("1000.00")))
	assert.Equal(t, int64(25050), ToPaise(dec("250.50")))
	assert.Equal(t, int64(1), ToPaise(dec("0.005")))
}

func TestCreateOrderCODSettlesImmediately(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "cod@example.com", model.RoleCustomer)
	pack := e.createPack(t, "250.00")

	resp, err := e.orderSvc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		PackID:          &pack.ID,
		Quantity:        1,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   model.PaymentCOD,
		TotalAmount:     decPtr("250.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.OrderPending, resp.Order.Status)
	assert.Equal(t, model.PaymentCompleted, resp.Payment.Status)
	assert.True(t, resp.Payment.Amount.Equal(dec("250")))
	assert.Empty(t, resp.RazorpayOrderID)
	assert.Empty(t, e.razorpay.calls)
	assert.Equal(t, []string{"cod@example.com"}, e.mail.sent)

	assert.Equal(t, int64(1), e.count(t, &model.Order{}))
	assert.Equal(t, int64(1), e.count(t, &model.Payment{}))
}

func TestCreateOrderRazorpayMintsRemoteOrder(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "rzp@example.com", model.RoleCustomer)
	pack := e.createPack(t, "500.00")

	resp, err := e.orderSvc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		PackID:          &pack.ID,
		Quantity:        2,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   model.PaymentRazorpay,
		TotalAmount:     decPtr("1000.00"),
	})
	require.NoError(t, err)

	require.Len(t, e.razorpay.calls, 1)
	call := e.razorpay.calls[0]
	assert.Equal(t, int64(100000), call.Amount)
	assert.Equal(t, "INR", call.Currency)
	assert.Equal(t, fmt.Sprintf("order_%d", resp.Order.ID), call.Receipt)

	assert.Equal(t, "order_remote_1", resp.RazorpayOrderID)
	assert.Equal(t, int64(100000), resp.Amount)
	assert.Equal(t, "rzp_test_key", resp.KeyID)

	payment, err := e.payments.LatestForOrder(ctx, e.db, resp.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, payment.Status)
	require.NotNil(t, payment.RazorpayOrderID)
	assert.Equal(t, "order_remote_1", *payment.RazorpayOrderID)

	stored, err := e.orders.Get(ctx, e.db, resp.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentProcessing, stored.PaymentStatus)
}

func TestCreateOrderGatewayFailureLeavesNothing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "fail@example.com", model.RoleCustomer)
	pack := e.createPack(t, "250.00")
	e.razorpay.err = errGatewayDown

	_, err := e.orderSvc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		PackID:          &pack.ID,
		Quantity:        1,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   model.PaymentRazorpay,
	})
	require.ErrorIs(t, err, errGatewayDown)

	assert.Zero(t, e.count(t, &model.Order{}))
	assert.Zero(t, e.count(t, &model.Payment{}))
	assert.Zero(t, e.count(t, &model.OrderPackContent{}))
	assert.Empty(t, e.mail.sent)
}

func TestCreateOrderRejectsMismatchedTotal(t *testing.T) {
	e := newEnv(t)
	user := e.createUser(t, "total@example.com", model.RoleCustomer)
	pack := e.createPack(t, "250.00")

	_, err := e.orderSvc.Create(context.Background(), actorOf(user), &dto.CreateOrderRequest{
		PackID:          &pack.ID,
		Quantity:        2,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   model.PaymentCOD,
		TotalAmount:     decPtr("1.00"),
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, e.count(t, &model.Order{}))
}

func TestCreateOrderValidation(t *testing.T) {
	e := newEnv(t)
	user := e.createUser(t, "invalid@example.com", model.RoleCustomer)
	other := e.createUser(t, "other@example.com", model.RoleCustomer)
	ctx := context.Background()

	address, err := e.addressSvc.Create(ctx, actorOf(other), &dto.AddressRequest{Name: "Home", Address: "Elsewhere"})
	require.NoError(t, err)

	cases := []struct {
		name string
		req  dto.CreateOrderRequest
		kind error
	}{
		{"zero quantity", dto.CreateOrderRequest{PackID: uintPtr(1), Quantity: 0, DeliveryAddress: "x", PaymentMethod: model.PaymentCOD}, ErrValidation},
		{"unknown method", dto.CreateOrderRequest{PackID: uintPtr(1), Quantity: 1, DeliveryAddress: "x", PaymentMethod: "cheque"}, ErrValidation},
		{"missing pack", dto.CreateOrderRequest{PackID: uintPtr(999), Quantity: 1, DeliveryAddress: "x", PaymentMethod: model.PaymentCOD}, ErrNotFound},
		{"no pack id", dto.CreateOrderRequest{Quantity: 1, DeliveryAddress: "x", PaymentMethod: model.PaymentCOD}, ErrValidation},
		{"custom without price", dto.CreateOrderRequest{IsCustom: true, CustomPackName: strPtr("Mine"), Quantity: 1, DeliveryAddress: "x", PaymentMethod: model.PaymentCOD}, ErrValidation},
		{"foreign address", dto.CreateOrderRequest{IsCustom: true, CustomPackName: strPtr("Mine"), UnitPrice: decPtr("10"), Quantity: 1, AddressID: &address.ID, PaymentMethod: model.PaymentCOD}, ErrForbidden},
		{"no address", dto.CreateOrderRequest{IsCustom: true, CustomPackName: strPtr("Mine"), UnitPrice: decPtr("10"), Quantity: 1, PaymentMethod: model.PaymentCOD}, ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := e.orderSvc.Create(ctx, actorOf(user), &req)
			require.ErrorIs(t, err, tc.kind)
		})
	}
	assert.Zero(t, e.count(t, &model.Order{}))
}

func TestCreateOrderSnapshotsPackAndClearsCart(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "snap@example.com", model.RoleCustomer)
	pack := e.createPack(t, "250.00")

	_, _, err := e.cartSvc.Add(ctx, actorOf(user), &dto.AddToCartRequest{PackID: &pack.ID, Quantity: 1})
	require.NoError(t, err)

	resp, err := e.orderSvc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		PackID:          &pack.ID,
		Quantity:        1,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   model.PaymentUPI,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, resp.Payment.Status)

	// later pack edits must not rewrite the order history
	items, err := e.packs.GetProducts(ctx, e.db, pack.ID)
	require.NoError(t, err)
	_, err = e.packSvc.ReplacePackProducts(ctx, &dto.BulkPackProductsRequest{
		PackID: pack.ID,
		Products: []dto.PackProductItem{
			{ProductID: items[0].ProductID, Quantity: 5, UnitPrice: dec("99.00")},
		},
	})
	require.NoError(t, err)

	order, err := e.orderSvc.Get(ctx, actorOf(user), resp.Order.ID)
	require.NoError(t, err)
	require.Len(t, order.PackContents, 1)
	assert.Equal(t, "Tomato", order.PackContents[0].ProductName)
	assert.Equal(t, 1, order.PackContents[0].Quantity)
	assert.True(t, order.PackContents[0].UnitPrice.Equal(dec("250")))

	cart, err := e.cartSvc.List(ctx, actorOf(user), user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCreateOrderSnapshotKeepsDeletedProductName(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "gone@example.com", model.RoleCustomer)
	pack := e.createPack(t, "120.00")

	items, err := e.packs.GetProducts(ctx, e.db, pack.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NoError(t, e.catalogSvc.DeleteProduct(ctx, items[0].ProductID))

	resp, err := e.orderSvc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		PackID:          &pack.ID,
		Quantity:        1,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   model.PaymentCOD,
	})
	require.NoError(t, err)

	order, err := e.orderSvc.Get(ctx, actorOf(user), resp.Order.ID)
	require.NoError(t, err)
	require.Len(t, order.PackContents, 1)
	assert.Equal(t, "Tomato", order.PackContents[0].ProductName)
	assert.Equal(t, items[0].ProductID, order.PackContents[0].ProductID)
}

func TestCreateOrderAddressIDResolvesDeliveryAddress(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "addr@example.com", model.RoleCustomer)

	address, err := e.addressSvc.Create(ctx, actorOf(user), &dto.AddressRequest{Name: "Home", Address: "221B Baker Street"})
	require.NoError(t, err)

	resp, err := e.orderSvc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		IsCustom:       true,
		CustomPackName: strPtr("My Mix"),
		UnitPrice:      decPtr("120.00"),
		Quantity:       3,
		AddressID:      &address.ID,
		PaymentMethod:  model.PaymentCOD,
	})
	require.NoError(t, err)

	assert.Equal(t, "221B Baker Street", resp.Order.DeliveryAddress)
	assert.True(t, resp.Order.TotalAmount.Equal(dec("360")))
	assert.Nil(t, resp.Order.PackID)
	assert.Zero(t, e.count(t, &model.OrderPackContent{}))
}

func TestCreateOrderCardWithBraintree(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "card@example.com", model.RoleCustomer)
	pack := e.createPack(t, "250.00")

	deps := e.orderDeps
	deps.Braintree = &fakeBraintree{txID: "bt_tx_1"}
	svc := NewOrderService(deps)

	resp, err := svc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		PackID:          &pack.ID,
		Quantity:        1,
		DeliveryAddress: "12 MG Road",
		PaymentMethod:   model.PaymentCard,
		PaymentNonce:    "fake-valid-nonce",
	})
	require.NoError(t, err)

	assert.Equal(t, model.PaymentCompleted, resp.Payment.Status)
	require.NotNil(t, resp.Payment.TransactionID)
	assert.Equal(t, "bt_tx_1", *resp.Payment.TransactionID)

	stored, err := e.orders.Get(ctx, e.db, resp.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, stored.PaymentStatus)
}

func TestOrderReadsEnforceOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.createUser(t, "owner@example.com", model.RoleCustomer)
	stranger := e.createUser(t, "stranger@example.com", model.RoleCustomer)
	admin := e.createUser(t, "admin@example.com", model.RoleAdmin)
	pack := e.createPack(t, "250.00")

	resp, err := e.orderSvc.Create(ctx, actorOf(owner), &dto.CreateOrderRequest{
		PackID: &pack.ID, Quantity: 1, DeliveryAddress: "x", PaymentMethod: model.PaymentCOD,
	})
	require.NoError(t, err)

	_, err = e.orderSvc.Get(ctx, actorOf(stranger), resp.Order.ID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = e.orderSvc.ListByUser(ctx, actorOf(stranger), owner.ID)
	require.ErrorIs(t, err, ErrForbidden)

	orders, err := e.orderSvc.ListByUser(ctx, actorOf(admin), owner.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Payments, 1)

	all, err := e.orderSvc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].User)
	assert.Equal(t, owner.Email, all[0].User.Email)

	_, err = e.orderSvc.Get(ctx, actorOf(admin), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.createUser(t, "status@example.com", model.RoleCustomer)
	pack := e.createPack(t, "250.00")

	resp, err := e.orderSvc.Create(ctx, actorOf(user), &dto.CreateOrderRequest{
		PackID: &pack.ID, Quantity: 1, DeliveryAddress: "x", PaymentMethod: model.PaymentCOD,
	})
	require.NoError(t, err)
	id := resp.Order.ID

	_, err = e.orderSvc.UpdateStatus(ctx, id, model.OrderDelivered)
	require.ErrorIs(t, err, ErrValidation)

	for _, status := range []model.OrderStatus{model.OrderConfirmed, model.OrderShipped, model.OrderDelivered} {
		order, err := e.orderSvc.UpdateStatus(ctx, id, status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}

	stored, err := e.orders.Get(ctx, e.db, id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderDelivered, stored.Status)
	assert.NotNil(t, stored.DeliveryDate)

	_, err = e.orderSvc.UpdateStatus(ctx, id, model.OrderCancelled)
	require.ErrorIs(t, err, ErrValidation)

	_, err = e.orderSvc.UpdateStatus(ctx, 999, model.OrderConfirmed)
	require.ErrorIs(t, err, ErrNotFound)
}
