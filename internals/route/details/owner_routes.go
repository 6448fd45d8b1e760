package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academiaController "modulus_backend/internals/features/platform/academias/controller"
	userController "modulus_backend/internals/features/users/user/controller"
)

// OwnerRoutes: provisionamento de tenants e administração global de
// usuários. Só o dono da plataforma chega aqui.
func OwnerRoutes(owner fiber.Router, db *gorm.DB) {
	academiaCtrl := academiaController.NewAcademiaController(db)
	userCtrl := userController.NewUserController(db)

	academias := owner.Group("/academias")
	academias.Post("/", academiaCtrl.Provision)
	academias.Get("/", academiaCtrl.GetAll)
	academias.Get("/:id", academiaCtrl.GetByID)
	academias.Put("/:id", academiaCtrl.Update)
	academias.Patch("/:id/logo", academiaCtrl.UploadLogo)
	academias.Delete("/:id", academiaCtrl.Delete)

	users := owner.Group("/users")
	users.Get("/", userCtrl.GetUsers)
	users.Post("/", userCtrl.CreateUser)
	users.Get("/:id", userCtrl.GetUserByID)
	users.Put("/:id", userCtrl.UpdateUser)
	users.Delete("/:id", userCtrl.DeleteUser)
}
