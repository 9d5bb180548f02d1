package paymentgateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature проверяет подпись платежного callback'а.
// Схема шлюза: hex(HMAC-SHA256("<order_id>|<payment_id>", key_secret)).
// Сравнение константное по времени. Ошибка проверки фатальна для callback'а:
// состояние заказа и бронирования не меняется.
func (c *Client) VerifySignature(orderID, paymentID, signature string) error {
	expected := computeSignature(orderID, paymentID, c.keySecret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

func computeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
