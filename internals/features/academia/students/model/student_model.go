package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel representa a tabela students. As modalidades ficam num
// array JSONB — linhas legadas podem carregar string JSON ou tag solta,
// o parse fica no dto (ParseModalityTags).
type StudentModel struct {
	StudentID         uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentAcademiaID uuid.UUID `gorm:"column:student_academia_id;type:uuid;not null;index" json:"student_academia_id"`

	StudentNome     string `gorm:"column:student_nome;type:varchar(100);not null" json:"student_nome"`
	StudentWhatsapp string `gorm:"column:student_whatsapp;type:varchar(30)" json:"student_whatsapp"`
	StudentGender   string `gorm:"column:student_gender;type:varchar(20)" json:"student_gender"`

	StudentDataVencimento time.Time `gorm:"column:student_data_vencimento;type:date;not null" json:"student_data_vencimento"`
	StudentMensalidade    float64   `gorm:"column:student_mensalidade;type:numeric(10,2);not null" json:"student_mensalidade"`

	StudentModalidades    datatypes.JSON `gorm:"column:student_modalidades;type:jsonb" json:"student_modalidades"`
	StudentClassesPerWeek int            `gorm:"column:student_classes_per_week;not null;default:1" json:"student_classes_per_week"`

	StudentStatus string `gorm:"column:student_status;type:varchar(20);not null;default:'active'" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
