package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AcademiaModel struct {
	AcademiaID      uuid.UUID      `gorm:"column:academia_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academia_id"`
	AcademiaName    string         `gorm:"column:academia_name;type:varchar(100);not null" json:"academia_name"`
	AcademiaSlug    string         `gorm:"column:academia_slug;type:varchar(100);uniqueIndex;not null" json:"academia_slug"`
	AcademiaStatus  string         `gorm:"column:academia_status;type:varchar(20);not null;default:'active'" json:"academia_status"`
	AcademiaLogoURL string         `gorm:"column:academia_logo_url;type:text" json:"academia_logo_url"`

	// catálogo de modalidades oferecidas pela academia (text[])
	AcademiaModalidades pq.StringArray `gorm:"column:academia_modalidades;type:text[]" json:"academia_modalidades"`

	AcademiaCreatedAt time.Time      `gorm:"column:academia_created_at;autoCreateTime" json:"academia_created_at"`
	AcademiaUpdatedAt time.Time      `gorm:"column:academia_updated_at;autoUpdateTime" json:"academia_updated_at"`
	AcademiaDeletedAt gorm.DeletedAt `gorm:"column:academia_deleted_at" json:"academia_deleted_at,omitempty"`
}

func (AcademiaModel) TableName() string {
	return "academias"
}
