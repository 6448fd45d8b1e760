package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "modulus_backend/internals/features/academia/payments/controller"
)

// WebhookRoutes: endpoints públicos chamados pelo gateway de pagamento.
func WebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	api.Post("/payments/notification", ctrl.HandleNotification)
}
