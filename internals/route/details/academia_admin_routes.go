package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "modulus_backend/internals/features/academia/dashboard/controller"
	paymentController "modulus_backend/internals/features/academia/payments/controller"
	studentController "modulus_backend/internals/features/academia/students/controller"
)

// AcademiaAdminRoutes: operação diária da academia. O tenant vem do
// token (middleware de auth), nunca da URL.
func AcademiaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	studentCtrl := studentController.NewStudentController(db)
	paymentCtrl := paymentController.NewPaymentController(db)
	dashboardCtrl := dashboardController.NewDashboardController(db)

	students := admin.Group("/students")
	students.Post("/", studentCtrl.Create)
	students.Get("/", studentCtrl.GetAll)
	students.Get("/search", studentCtrl.Search)
	students.Get("/:id", studentCtrl.GetByID)
	students.Put("/:id", studentCtrl.Update)
	students.Patch("/:id/deactivate", studentCtrl.Deactivate)

	payments := admin.Group("/payments")
	payments.Get("/", paymentCtrl.GetAll)
	payments.Post("/approve", paymentCtrl.Approve)
	payments.Post("/manual", paymentCtrl.RegisterManual)
	payments.Post("/reject", paymentCtrl.Reject)

	dashboard := admin.Group("/dashboard")
	dashboard.Get("/stats", dashboardCtrl.GetStats)
	dashboard.Get("/segmentation", dashboardCtrl.GetSegmentation)
	dashboard.Get("/audit", dashboardCtrl.GetAudit)
}
