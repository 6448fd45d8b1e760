package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "modulus_backend/internals/features/academia/payments/controller"
)

// MemberRoutes: portal do aluno.
func MemberRoutes(member fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)
	member.Post("/payments", paymentCtrl.Submit)
}
