package client

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"freshpack-backend/internal/config"
	"io"
	"net/http"
	"strings"
)

type RazorpayClient interface {
	// CreateOrder mints a remote order. amount is in minor units (paise).
	CreateOrder(ctx context.Context, req *RazorpayOrderRequest) (*RazorpayOrder, error)

	// VerifySignature checks the checkout callback triple against the key secret.
	VerifySignature(orderID, paymentID, signature string) bool

	KeyID() string
}

type RazorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	// 1 captures the payment automatically once authorised
	PaymentCapture int `json:"payment_capture"`
}

type RazorpayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
}

func NewRazorpayClient(cfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseApiURL: strings.TrimRight(cfg.BaseApiURL, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}
}

func (c *razorpayClientImpl) KeyID() string {
	return c.keyID
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, payload *RazorpayOrderRequest) (*RazorpayOrder, error) {
	if payload.Amount <= 0 {
		return nil, fmt.Errorf("razorpay amount must be positive, got %d", payload.Amount)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseApiURL+"/v1/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("razorpay error %d: %s", resp.StatusCode, string(b))
	}

	var result RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode razorpay response: %w", err)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("razorpay response has no order id")
	}

	return &result, nil
}

func (c *razorpayClientImpl) VerifySignature(orderID, paymentID, signature string) bool {
	expected := Sign(c.keySecret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign returns the hex HMAC-SHA256 of "orderID|paymentID" under secret, the
// value the checkout callback carries as its signature.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
