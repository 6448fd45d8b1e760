package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PaymentModel representa a tabela payments. ValidatedAt só é preenchido
// quando o pagamento é aprovado.
type PaymentModel struct {
	PaymentID         uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentAcademiaID uuid.UUID `gorm:"column:payment_academia_id;type:uuid;not null;index" json:"payment_academia_id"`
	PaymentStudentID  uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`

	PaymentValor float64   `gorm:"column:payment_valor;type:numeric(10,2);not null" json:"payment_valor"`
	PaymentData  time.Time `gorm:"column:payment_data;type:date;not null" json:"payment_data"`

	PaymentStatus      string     `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentValidatedAt *time.Time `gorm:"column:payment_validated_at;type:timestamptz" json:"payment_validated_at,omitempty"`

	PaymentModalidade     *string `gorm:"column:payment_modalidade;type:varchar(50)" json:"payment_modalidade,omitempty"`
	PaymentComprovanteURL *string `gorm:"column:payment_comprovante_url;type:text" json:"payment_comprovante_url,omitempty"`
	PaymentOrderID        *string `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex" json:"payment_order_id,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
