package model

import (
	"time"

	"github.com/google/uuid"
)

type AcademiaMemberModel struct {
	AcademiaMemberID         uuid.UUID `gorm:"column:academia_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academia_member_id"`
	AcademiaMemberAcademiaID uuid.UUID `gorm:"column:academia_member_academia_id;type:uuid;not null;index" json:"academia_member_academia_id"`
	AcademiaMemberUserID     uuid.UUID `gorm:"column:academia_member_user_id;type:uuid;not null;index" json:"academia_member_user_id"`
	AcademiaMemberRole       string    `gorm:"column:academia_member_role;type:varchar(20);not null;default:'staff'" json:"academia_member_role"`
	AcademiaMemberCreatedAt  time.Time `gorm:"column:academia_member_created_at;autoCreateTime" json:"academia_member_created_at"`
}

func (AcademiaMemberModel) TableName() string {
	return "academia_members"
}
