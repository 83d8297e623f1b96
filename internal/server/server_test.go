package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freshpack-backend/internal/client"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRazorpay struct{}

func (stubRazorpay) CreateOrder(_ context.Context, req *client.RazorpayOrderRequest) (*client.RazorpayOrder, error) {
	return &client.RazorpayOrder{ID: "order_stub", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt}, nil
}

func (stubRazorpay) VerifySignature(orderID, paymentID, signature string) bool {
	return client.Sign("secret", orderID, paymentID) == signature
}

func (stubRazorpay) KeyID() string { return "rzp_stub" }

type nopMail struct{}

func (nopMail) Send(context.Context, string, string, string, string) error { return nil }

type testServer struct {
	t        *testing.T
	handler  http.Handler
	services Services
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	services := NewServices(db, config.JWT{Secret: "test", TTL: time.Hour}, time.Second, Clients{
		Razorpay: stubRazorpay{},
		Mail:     nopMail{},
	}, zap.NewNop())

	_, err := services.Seed.Seed(context.Background())
	require.NoError(t, err)

	srv := NewServer(services, zap.NewNop(), Options{MaintenanceEnabled: true})
	return &testServer{t: t, handler: srv.Handler(), services: services}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	out := map[string]interface{}{}
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func (s *testServer) doList(method, path, token string) (int, []map[string]interface{}) {
	s.t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var out []map[string]interface{}
	if rec.Code == http.StatusOK {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func (s *testServer) login(email, password string) (string, uint) {
	s.t.Helper()

	code, body := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, code, body)
	user := body["user"].(map[string]interface{})
	return body["token"].(string), uint(user["id"].(float64))
}

func TestHealthAndUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body["status"])

	code, body = s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "timestamp")

	code, body = s.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route not found", body["error"])
}

func TestRegisterAndDuplicate(t *testing.T) {
	s := newTestServer(t)
	payload := map[string]string{"name": "Ravi", "email": "ravi@example.com", "password": "pw"}

	code, body := s.do(http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	code, body = s.do(http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User already exists with this email", body["error"])

	code, body = s.do(http.MethodPost, "/api/auth/register", "", map[string]string{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Name, email, and password are required", body["error"])

	code, body = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ravi@example.com", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestAuthGuards(t *testing.T) {
	s := newTestServer(t)
	customer, _ := s.login("john@example.com", "password123")

	code, body := s.do(http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Access token required", body["error"])

	code, body = s.do(http.MethodGet, "/api/cart", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Invalid token", body["error"])

	code, body = s.do(http.MethodGet, "/api/orders", customer, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Access denied. Admin only.", body["error"])

	code, body = s.do(http.MethodPost, "/api/auth/admin-login", "", map[string]string{"email": "john@example.com", "password": "password123"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Access denied. Admin only.", body["error"])

	admin, _ := s.login("admin@freshgrupo.com", "Welcome@919")
	code, users := s.doList(http.MethodGet, "/api/users?role=customer", admin)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "password")
}

func TestPublicCatalog(t *testing.T) {
	s := newTestServer(t)

	code, categories := s.doList(http.MethodGet, "/api/public/categories", "")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, categories)

	code, packs := s.doList(http.MethodGet, "/api/public/packs", "")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, packs)

	id := uint(categories[0]["id"].(float64))
	code, _ = s.doList(http.MethodGet, fmt.Sprintf("/api/public/categories/%d/packs", id), "")
	assert.Equal(t, http.StatusOK, code)

	code, body := s.do(http.MethodGet, "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid id", body["error"])

	code, body = s.do(http.MethodGet, "/api/products/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product not found", body["error"])
}

func TestCartAndCheckoutFlow(t *testing.T) {
	s := newTestServer(t)
	token, userID := s.login("john@example.com", "password123")

	_, packs := s.doList(http.MethodGet, "/api/public/packs", "")
	require.NotEmpty(t, packs)
	packID := uint(packs[0]["id"].(float64))

	code, line := s.do(http.MethodPost, "/api/cart", token, map[string]interface{}{"packId": packID, "quantity": 2})
	require.Equal(t, http.StatusCreated, code, line)

	code, line = s.do(http.MethodPost, "/api/cart", token, map[string]interface{}{"packId": packID, "quantity": 1})
	require.Equal(t, http.StatusOK, code, line)
	assert.Equal(t, float64(3), line["quantity"])

	code, body := s.do(http.MethodPost, "/api/cart", token, map[string]interface{}{"packId": packID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "quantity is required", body["error"])

	code, order := s.do(http.MethodPost, "/api/orders", token, map[string]interface{}{
		"packId":          packID,
		"quantity":        1,
		"deliveryAddress": "12 MG Road",
		"paymentMethod":   "razorpay",
	})
	require.Equal(t, http.StatusCreated, code, order)
	assert.Equal(t, "order_stub", order["razorpayOrderId"])
	assert.Equal(t, "rzp_stub", order["keyId"])
	orderID := uint(order["order"].(map[string]interface{})["id"].(float64))

	code, cart := s.doList(http.MethodGet, "/api/cart", token)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, cart)

	code, body = s.do(http.MethodPost, "/api/verify-payment", token, map[string]interface{}{
		"razorpay_order_id":   "order_stub",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "forged",
		"orderId":             orderID,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "Payment verification failed", body["message"])

	code, body = s.do(http.MethodPost, "/api/verify-payment", token, map[string]interface{}{
		"razorpay_order_id":   "order_stub",
		"razorpay_payment_id": "pay_2",
		"razorpay_signature":  client.Sign("secret", "order_stub", "pay_2"),
		"orderId":             orderID,
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "success", body["status"])

	code, details := s.do(http.MethodGet, fmt.Sprintf("/api/orders/details/%d", orderID), token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(model.OrderConfirmed), details["status"])
	assert.Equal(t, string(model.PaymentCompleted), details["paymentStatus"])
	assert.Len(t, details["payments"], 3)
	assert.NotEmpty(t, details["packContents"])

	code, orders := s.doList(http.MethodGet, fmt.Sprintf("/api/orders/%d", userID), token)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, orders, 1)

	code, _ = s.doList(http.MethodGet, fmt.Sprintf("/api/orders/%d", userID+1), token)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestAdminOrderStatus(t *testing.T) {
	s := newTestServer(t)
	customer, _ := s.login("john@example.com", "password123")
	admin, _ := s.login("admin@freshgrupo.com", "Welcome@919")

	code, order := s.do(http.MethodPost, "/api/orders", customer, map[string]interface{}{
		"isCustom":        true,
		"customPackName":  "My Mix",
		"customPackItems": []map[string]int{{"productId": 1, "quantity": 2}},
		"unitPrice":       "150.00",
		"quantity":        2,
		"totalAmount":     "300.00",
		"deliveryAddress": "12 MG Road",
		"paymentMethod":   "cod",
	})
	require.Equal(t, http.StatusCreated, code, order)
	assert.Equal(t, "completed", order["payment"].(map[string]interface{})["status"])
	orderID := uint(order["order"].(map[string]interface{})["id"].(float64))

	path := fmt.Sprintf("/api/orders/%d/status", orderID)

	code, _ = s.do(http.MethodPatch, path, customer, map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, code)

	code, body := s.do(http.MethodPatch, path, admin, map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "Cannot change order status")

	code, body = s.do(http.MethodPatch, path, admin, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "confirmed", body["status"])

	code, all := s.doList(http.MethodGet, "/api/orders", admin)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, all, 1)
}

func TestMaintenanceRoutesAreOptional(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodPost, "/api/seed", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["skipped"])

	srv := NewServer(s.services, zap.NewNop(), Options{})
	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
