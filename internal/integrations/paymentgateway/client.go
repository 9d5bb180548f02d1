package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза.
// Конструируется в main и передается явно, без глобального синглтона,
// в тестах подменяется через интерфейс на стороне потребителя.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает заказ в шлюзе на указанную сумму.
// Таймаут и 5xx ответы маппятся в ErrGatewayUnavailable: вызывающая сторона
// может повторить создание заказа, локальное состояние при этом не меняется.
func (c *Client) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/orders", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			c.log.Error("CreateOrder: gateway timeout: %v", err)
			return nil, fmt.Errorf("%w: timeout: %v", ErrGatewayUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		c.log.Error("CreateOrder: gateway returned %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status code %d", ErrGatewayUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if order.OrderID == "" {
		return nil, fmt.Errorf("%w: empty order id", ErrInvalidResponse)
	}

	c.log.Info("CreateOrder: created order %s, amount=%d %s", order.OrderID, order.AmountMinor, order.Currency)
	return &order, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
