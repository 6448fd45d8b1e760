package model

import (
	"time"

	"github.com/google/uuid"
)

type AcademiaModuleModel struct {
	AcademiaModuleID         uuid.UUID `gorm:"column:academia_module_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academia_module_id"`
	AcademiaModuleAcademiaID uuid.UUID `gorm:"column:academia_module_academia_id;type:uuid;not null;index" json:"academia_module_academia_id"`
	AcademiaModuleModuleID   string    `gorm:"column:academia_module_module_id;type:varchar(50);not null" json:"academia_module_module_id"`
	AcademiaModuleIsEnabled  bool      `gorm:"column:academia_module_is_enabled;not null;default:true" json:"academia_module_is_enabled"`
	AcademiaModuleCreatedAt  time.Time `gorm:"column:academia_module_created_at;autoCreateTime" json:"academia_module_created_at"`
}

func (AcademiaModuleModel) TableName() string {
	return "academia_modules"
}
