package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// firstUUIDFromLocals evita duplicar o parsing dos claims em cada controller.
func firstUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" não encontrado no token")
	}

	switch t := v.(type) {
	case []string:
		if len(t) == 0 || strings.TrimSpace(t[0]) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" vazio no token")
		}
		return uuid.Parse(strings.TrimSpace(t[0]))
	case []interface{}:
		if len(t) == 0 {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" vazio no token")
		}
		if s, ok := t[0].(string); ok {
			return uuid.Parse(strings.TrimSpace(s))
		}
	case string:
		if strings.TrimSpace(t) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" vazio no token")
		}
		return uuid.Parse(strings.TrimSpace(t))
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Formato de "+key+" inválido no token")
}

// GetAcademiaIDFromToken devolve a academia ativa do usuário autenticado.
// O middleware de auth grava "academia_id" (ativa) e "academia_ids" (todas).
func GetAcademiaIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, err := firstUUIDFromLocals(c, "academia_id"); err == nil {
		return id, nil
	}
	return firstUUIDFromLocals(c, "academia_ids")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "user_id")
}

func GetUserRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals("userRole").(string); ok {
		return s
	}
	return ""
}
