// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "modulus_backend/internals/features/users/auth/model"
	userModel "modulus_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmailOrUsernameLight(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Select("id", "password", "is_active").
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshToken) error {
	return db.Create(token).Error
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token_hash = ?", hash).Delete(&authModel.RefreshToken{}).Error
}

func RefreshTokenHashExists(db *gorm.DB, hash []byte) (bool, error) {
	var exists bool
	err := db.Raw(
		`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > NOW())`,
		hash,
	).Scan(&exists).Error
	return exists, err
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

/* ====================== MEMBERSHIP ====================== */

type MembershipRecord struct {
	AcademiaID   uuid.UUID `gorm:"column:academia_member_academia_id"`
	AcademiaSlug string    `gorm:"column:academia_slug"`
	MemberRole   string    `gorm:"column:academia_member_role"`
	ModuleID     string    `gorm:"column:academia_module_module_id"`
}

// FindMembershipsByUserID devolve as academias ativas do usuário com o
// módulo habilitado, para montar os claims e o redirect pós-login.
func FindMembershipsByUserID(db *gorm.DB, userID uuid.UUID) ([]MembershipRecord, error) {
	var out []MembershipRecord
	err := db.Raw(`
		SELECT m.academia_member_academia_id,
		       a.academia_slug,
		       m.academia_member_role,
		       COALESCE(md.academia_module_module_id, '') AS academia_module_module_id
		FROM academia_members m
		JOIN academias a
		  ON a.academia_id = m.academia_member_academia_id
		 AND a.academia_status = 'active'
		 AND a.academia_deleted_at IS NULL
		LEFT JOIN academia_modules md
		  ON md.academia_module_academia_id = m.academia_member_academia_id
		 AND md.academia_module_is_enabled = TRUE
		WHERE m.academia_member_user_id = ?
		ORDER BY m.academia_member_created_at ASC
	`, userID).Scan(&out).Error
	return out, err
}
