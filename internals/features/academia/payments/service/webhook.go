package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"modulus_backend/internals/configs"
	"modulus_backend/internals/features/academia/payments/model"
)

// VerifyWebhookSignature confere o signature_key do gateway:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifyWebhookSignature(body map[string]interface{}) bool {
	orderID, _ := body["order_id"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signature, _ := body["signature_key"].(string)
	serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY")

	if orderID == "" || signature == "" || serverKey == "" {
		return false
	}

	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == signature
}

// HandlePaymentStatusWebhook processa a notificação do gateway.
// Liquidação no gateway deixa o pagamento pendente de conferência
// manual; expiração/cancelamento rejeita.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] payload do webhook incompleto:", body)
		return fmt.Errorf("invalid payload")
	}

	var payment model.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] pagamento do webhook não encontrado:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		payment.PaymentStatus = model.StatusPending
		payment.PaymentData = time.Now()
	case "expire", "cancel", "deny":
		payment.PaymentStatus = model.StatusRejected
	default:
		log.Println("[INFO] status ignorado:", status)
		return nil
	}

	if err := db.Save(&payment).Error; err != nil {
		log.Println("[ERROR] falha ao salvar status do pagamento:", err)
		return err
	}
	return nil
}
