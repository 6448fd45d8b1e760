// internals/features/academia/payments/service/lifecycle.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "modulus_backend/internals/features/academia/payments/model"
	studentDTO "modulus_backend/internals/features/academia/students/dto"
	studentModel "modulus_backend/internals/features/academia/students/model"
)

var (
	ErrPaymentNotFound  = errors.New("pagamento não encontrado")
	ErrStudentNotFound  = errors.New("aluno não encontrado")
	ErrAlreadyProcessed = errors.New("pagamento já foi processado")
	ErrModalidadeNeeded = errors.New("aluno com mais de uma modalidade: informe qual está sendo paga")
)

// AdvanceDueDate empurra o vencimento em exatos 30 dias corridos.
// O estouro de mês segue a aritmética de calendário (31/01 → 02/03).
func AdvanceDueDate(due time.Time) time.Time {
	return due.AddDate(0, 0, 30)
}

// Approve aprova um pagamento e rola o vencimento do aluno, numa única
// transação. paymentID nulo registra um pagamento aprovado com a data de
// hoje (aluno pagou sem ter enviado comprovante).
func Approve(db *gorm.DB, academiaID, studentID uuid.UUID, paymentID *uuid.UUID, now time.Time) (*paymentModel.PaymentModel, error) {
	var approved *paymentModel.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student,
			"student_id = ? AND student_academia_id = ?", studentID, academiaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		validatedAt := now
		if paymentID != nil {
			var payment paymentModel.PaymentModel
			if err := tx.First(&payment,
				"payment_id = ? AND payment_academia_id = ?", *paymentID, academiaID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPaymentNotFound
				}
				return err
			}
			if payment.PaymentStatus != paymentModel.StatusPending {
				return ErrAlreadyProcessed
			}
			payment.PaymentStatus = paymentModel.StatusApproved
			payment.PaymentValidatedAt = &validatedAt
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}
			approved = &payment
		} else {
			payment := paymentModel.PaymentModel{
				PaymentAcademiaID:  academiaID,
				PaymentStudentID:   student.StudentID,
				PaymentValor:       student.StudentMensalidade,
				PaymentData:        now,
				PaymentStatus:      paymentModel.StatusApproved,
				PaymentValidatedAt: &validatedAt,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			approved = &payment
		}

		// rollover: se falhar, a aprovação acima volta junto
		student.StudentDataVencimento = AdvanceDueDate(student.StudentDataVencimento)
		return tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", student.StudentID).
			Update("student_data_vencimento", student.StudentDataVencimento).Error
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// RegisterManual registra um pagamento aprovado na hora (recepção).
// Quando o aluno tem duas ou mais modalidades a tag paga é obrigatória.
func RegisterManual(db *gorm.DB, academiaID, studentID uuid.UUID, valor *float64, modalidade string, now time.Time) (*paymentModel.PaymentModel, error) {
	var created *paymentModel.PaymentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student,
			"student_id = ? AND student_academia_id = ?", studentID, academiaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		tags := studentDTO.ParseModalityTags(student.StudentModalidades).Tags
		modalidade = strings.TrimSpace(modalidade)
		if len(tags) >= 2 && modalidade == "" {
			return ErrModalidadeNeeded
		}
		if modalidade == "" && len(tags) == 1 {
			modalidade = tags[0]
		}

		amount := student.StudentMensalidade
		if valor != nil {
			amount = *valor
		}

		validatedAt := now
		payment := paymentModel.PaymentModel{
			PaymentAcademiaID:  academiaID,
			PaymentStudentID:   student.StudentID,
			PaymentValor:       amount,
			PaymentData:        now,
			PaymentStatus:      paymentModel.StatusApproved,
			PaymentValidatedAt: &validatedAt,
			PaymentModalidade:  strptr(modalidade),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		created = &payment

		student.StudentDataVencimento = AdvanceDueDate(student.StudentDataVencimento)
		return tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", student.StudentID).
			Update("student_data_vencimento", student.StudentDataVencimento).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Reject marca o pagamento como rejeitado. Estado terminal: não mexe no
// vencimento nem em mais nada.
func Reject(db *gorm.DB, academiaID, paymentID uuid.UUID) (*paymentModel.PaymentModel, error) {
	var payment paymentModel.PaymentModel
	if err := db.First(&payment,
		"payment_id = ? AND payment_academia_id = ?", paymentID, academiaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.PaymentStatus != paymentModel.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	payment.PaymentStatus = paymentModel.StatusRejected
	if err := db.Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
