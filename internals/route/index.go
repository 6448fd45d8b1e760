package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"modulus_backend/internals/constants"
	"modulus_backend/internals/middlewares/auth"
	"modulus_backend/internals/route/details"
)

// SetupRoutes monta a árvore de rotas:
//
//	/api/auth  — cadastro/login/refresh (público, com rate limit)
//	/api/o     — dono da plataforma (provisionamento, usuários)
//	/api/a     — administração da academia (alunos, pagamentos, painel)
//	/api/u     — portal do aluno (envio de pagamento)
//	/api/payments/notification — webhook do gateway (público, assinado)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.WebhookRoutes(api, db)

	owner := api.Group("/o",
		auth.AuthMiddleware(db),
		auth.OnlyRoles("Apenas o dono da plataforma pode acessar este recurso", constants.RoleOwner),
	)
	details.OwnerRoutes(owner, db)

	admin := api.Group("/a",
		auth.AuthMiddleware(db),
		auth.OnlyRoles("Apenas administradores da academia podem acessar este recurso",
			constants.AcademiaAdmins...),
	)
	details.AcademiaAdminRoutes(admin, db)

	member := api.Group("/u", auth.AuthMiddleware(db))
	details.MemberRoutes(member, db)
}
