package client

import (
	"context"
	"encoding/json"
	"freshpack-backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpayCreateOrder(t *testing.T) {
	var got RazorpayOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(RazorpayOrder{
			ID:       "order_abc",
			Amount:   got.Amount,
			Currency: got.Currency,
			Receipt:  got.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	c := NewRazorpayClient(&config.Razorpay{BaseApiURL: srv.URL + "/", KeyID: "rzp_test_key", KeySecret: "secret", Timeout: time.Second})

	order, err := c.CreateOrder(context.Background(), &RazorpayOrderRequest{
		Amount:         100000,
		Currency:       "INR",
		Receipt:        "order_7",
		PaymentCapture: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(100000), got.Amount)
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "order_7", got.Receipt)
	assert.Equal(t, 1, got.PaymentCapture)
}

func TestRazorpayCreateOrderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"description":"bad amount"}}`))
	}))
	defer srv.Close()

	c := NewRazorpayClient(&config.Razorpay{BaseApiURL: srv.URL, KeyID: "k", KeySecret: "s", Timeout: time.Second})

	_, err := c.CreateOrder(context.Background(), &RazorpayOrderRequest{Amount: 100, Currency: "INR", Receipt: "order_1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad amount")
}

func TestRazorpayCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	c := NewRazorpayClient(&config.Razorpay{BaseApiURL: "http://unused", Timeout: time.Second})

	_, err := c.CreateOrder(context.Background(), &RazorpayOrderRequest{Amount: 0})
	require.Error(t, err)
}

func TestRazorpayVerifySignature(t *testing.T) {
	c := NewRazorpayClient(&config.Razorpay{KeySecret: "topsecret"})

	sig := Sign("topsecret", "order_abc", "pay_xyz")
	assert.Len(t, sig, 64)
	assert.True(t, c.VerifySignature("order_abc", "pay_xyz", sig))

	assert.False(t, c.VerifySignature("order_abc", "pay_xyz", "deadbeef"))
	assert.False(t, c.VerifySignature("order_abc", "pay_other", sig))
	assert.False(t, c.VerifySignature("order_abc", "pay_xyz", Sign("wrong", "order_abc", "pay_xyz")))
}
