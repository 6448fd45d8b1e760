// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "modulus_backend/internals/features/users/auth/model"
	authRepo "modulus_backend/internals/features/users/auth/repository"
	helper "modulus_backend/internals/helpers"
)

// RefreshToken rotaciona o refresh do cookie e emite um access novo.
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token ausente")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	oldHash := computeRefreshHash(refreshCookie, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, oldHash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro de banco")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconhecido")
	}

	userFull, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !userFull.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	memberships, err := authRepo.FindMembershipsByUserID(db, userFull.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar academias do usuário")
	}
	academiaIDs := make([]string, 0, len(memberships))
	seen := map[string]struct{}{}
	for _, m := range memberships {
		id := m.AcademiaID.String()
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			academiaIDs = append(academiaIDs, id)
		}
	}

	// rotate: o hash antigo sai antes do novo entrar
	_ = authRepo.DeleteRefreshTokenByHash(db, oldHash)

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	now := nowUTC()

	accessClaims := buildAccessClaims(*userFull, academiaIDs, now)
	refreshClaims := buildRefreshClaims(userFull.ID.String(), now)

	newAccess, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar access token")
	}
	newRefresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar refresh token")
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    userFull.ID,
		TokenHash: computeRefreshHash(newRefresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar refresh token")
	}

	setAuthCookies(c, newAccess, newRefresh, now)

	return helper.JsonOK(c, "Token renovado.", fiber.Map{
		"access_token": newAccess,
	})
}
