package dto

import (
	"time"

	"github.com/google/uuid"

	"modulus_backend/internals/features/academia/payments/model"
)

// ===== Requests =====

// SubmitPaymentRequest: fluxo do aluno (portal do membro).
type SubmitPaymentRequest struct {
	StudentID  string   `json:"student_id" form:"student_id" validate:"required,uuid4"`
	Valor      *float64 `json:"valor" form:"valor" validate:"omitempty,gt=0"`
	Modalidade string   `json:"modalidade" form:"modalidade" validate:"omitempty,max=50"`
	UseGateway bool     `json:"use_gateway" form:"use_gateway"`
}

// ApprovePaymentRequest: payment_id nulo significa que não existe
// pagamento enviado — o sistema registra um aprovado com a data de hoje.
type ApprovePaymentRequest struct {
	PaymentID *string `json:"payment_id" validate:"omitempty,uuid4"`
	StudentID string  `json:"student_id" validate:"required,uuid4"`
}

// ManualPaymentRequest: registro feito pela recepção. A modalidade é
// obrigatória quando o aluno pratica mais de uma.
type ManualPaymentRequest struct {
	StudentID  string   `json:"student_id" validate:"required,uuid4"`
	Valor      *float64 `json:"valor" validate:"omitempty,gt=0"`
	Modalidade string   `json:"modalidade" validate:"omitempty,max=50"`
}

type RejectPaymentRequest struct {
	PaymentID string `json:"payment_id" validate:"required,uuid4"`
}

// ===== Responses =====

type PaymentResponse struct {
	PaymentID      uuid.UUID  `json:"payment_id"`
	StudentID      uuid.UUID  `json:"student_id"`
	Valor          float64    `json:"valor"`
	Data           string     `json:"data"`
	Status         string     `json:"status"`
	ValidatedAt    *time.Time `json:"validated_at,omitempty"`
	Modalidade     *string    `json:"modalidade,omitempty"`
	ComprovanteURL *string    `json:"comprovante_url,omitempty"`
	OrderID        *string    `json:"order_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromModel(m *model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:      m.PaymentID,
		StudentID:      m.PaymentStudentID,
		Valor:          m.PaymentValor,
		Data:           m.PaymentData.Format("2006-01-02"),
		Status:         m.PaymentStatus,
		ValidatedAt:    m.PaymentValidatedAt,
		Modalidade:     m.PaymentModalidade,
		ComprovanteURL: m.PaymentComprovanteURL,
		OrderID:        m.PaymentOrderID,
		CreatedAt:      m.PaymentCreatedAt,
	}
}

func FromModels(ms []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
