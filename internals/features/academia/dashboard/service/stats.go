// internals/features/academia/dashboard/service/stats.go
//
// Motor de agregação do painel financeiro. Funções puras sobre as linhas
// já filtradas por academia: sem IO, sem efeito colateral, mesmo input →
// mesmo output.
package service

import (
	"time"

	"github.com/google/uuid"

	paymentModel "modulus_backend/internals/features/academia/payments/model"
	studentModel "modulus_backend/internals/features/academia/students/model"
)

type DashboardStats struct {
	AnnualRevenue     float64 `json:"annual_revenue"`
	MonthlyReceived   float64 `json:"monthly_received"`
	MonthlyExpected   float64 `json:"monthly_expected"`
	MonthlyMissing    float64 `json:"monthly_missing"`
	NextMonthForecast float64 `json:"next_month_forecast"`
	TotalStudents     int     `json:"total_students"`

	PendingPayments []AuditRow `json:"pending_payments"`
}

// AuditRow é a situação de cobrança de um aluno ativo no ciclo corrente.
type AuditRow struct {
	StudentID uuid.UUID  `json:"student_id"`
	Nome      string     `json:"nome"`
	Whatsapp  string     `json:"whatsapp,omitempty"`
	Status    string     `json:"status"` // paid | pending | overdue | open
	Valor     float64    `json:"valor"`
	Data      string     `json:"data"` // AAAA-MM-DD
	PaymentID *uuid.UUID `json:"payment_id,omitempty"`
}

const (
	AuditPaid    = "paid"
	AuditPending = "pending"
	AuditOverdue = "overdue"
	AuditOpen    = "open"
)

// ComputeDashboardStats calcula os KPIs do mês/ano corrente.
//
//   - receita anual/mensal conta pagamentos aprovados pelo validated_at
//   - esperado do mês soma a mensalidade (uma vez por aluno) de quem
//     vence neste (ano, mês)
//   - falta do mês nunca fica negativa
//   - previsão do próximo mês soma a mensalidade de todos os ativos
func ComputeDashboardStats(students []studentModel.StudentModel, payments []paymentModel.PaymentModel, now time.Time) DashboardStats {
	year, month := now.Year(), now.Month()

	var stats DashboardStats

	for i := range payments {
		p := &payments[i]
		if p.PaymentStatus != paymentModel.StatusApproved || p.PaymentValidatedAt == nil {
			continue
		}
		v := *p.PaymentValidatedAt
		if v.Year() == year {
			stats.AnnualRevenue += p.PaymentValor
			if v.Month() == month {
				stats.MonthlyReceived += p.PaymentValor
			}
		}
	}

	audit := BuildAuditRows(students, payments, now)

	for i := range students {
		s := &students[i]
		if s.StudentStatus != studentModel.StatusActive {
			continue
		}
		stats.TotalStudents++
		stats.NextMonthForecast += s.StudentMensalidade
		if s.StudentDataVencimento.Year() == year && s.StudentDataVencimento.Month() == month {
			stats.MonthlyExpected += s.StudentMensalidade
		}
	}

	stats.MonthlyMissing = stats.MonthlyExpected - stats.MonthlyReceived
	if stats.MonthlyMissing < 0 {
		stats.MonthlyMissing = 0
	}

	stats.PendingPayments = make([]AuditRow, 0, len(audit))
	for _, row := range audit {
		if row.Status == AuditPending || row.Status == AuditOverdue {
			stats.PendingPayments = append(stats.PendingPayments, row)
		}
	}

	return stats
}

// BuildAuditRows classifica cada aluno ativo:
//
//	paid    — pagamento aprovado com validated_at no (ano, mês) corrente
//	pending — existe pagamento enviado aguardando conferência
//	overdue — vencimento já passou e nada foi pago nem enviado
//	open    — dentro do prazo, sem movimentação
//
// Valor/data exibidos vêm do pagamento quando ele existe; senão caem na
// mensalidade e no vencimento do aluno.
func BuildAuditRows(students []studentModel.StudentModel, payments []paymentModel.PaymentModel, now time.Time) []AuditRow {
	year, month := now.Year(), now.Month()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	paidByStudent := map[uuid.UUID]*paymentModel.PaymentModel{}
	pendingByStudent := map[uuid.UUID]*paymentModel.PaymentModel{}
	for i := range payments {
		p := &payments[i]
		switch p.PaymentStatus {
		case paymentModel.StatusApproved:
			if p.PaymentValidatedAt != nil &&
				p.PaymentValidatedAt.Year() == year && p.PaymentValidatedAt.Month() == month {
				if cur, ok := paidByStudent[p.PaymentStudentID]; !ok || p.PaymentValidatedAt.After(*cur.PaymentValidatedAt) {
					paidByStudent[p.PaymentStudentID] = p
				}
			}
		case paymentModel.StatusPending:
			if cur, ok := pendingByStudent[p.PaymentStudentID]; !ok || p.PaymentData.After(cur.PaymentData) {
				pendingByStudent[p.PaymentStudentID] = p
			}
		}
	}

	rows := make([]AuditRow, 0, len(students))
	for i := range students {
		s := &students[i]
		if s.StudentStatus != studentModel.StatusActive {
			continue
		}

		row := AuditRow{
			StudentID: s.StudentID,
			Nome:      s.StudentNome,
			Whatsapp:  s.StudentWhatsapp,
			Valor:     s.StudentMensalidade,
			Data:      s.StudentDataVencimento.Format("2006-01-02"),
			Status:    AuditOpen,
		}

		switch {
		case paidByStudent[s.StudentID] != nil:
			p := paidByStudent[s.StudentID]
			row.Status = AuditPaid
			row.Valor = p.PaymentValor
			row.Data = p.PaymentData.Format("2006-01-02")
			id := p.PaymentID
			row.PaymentID = &id
		case pendingByStudent[s.StudentID] != nil:
			p := pendingByStudent[s.StudentID]
			row.Status = AuditPending
			row.Valor = p.PaymentValor
			row.Data = p.PaymentData.Format("2006-01-02")
			id := p.PaymentID
			row.PaymentID = &id
		case s.StudentDataVencimento.Before(today):
			row.Status = AuditOverdue
		}

		rows = append(rows, row)
	}

	return rows
}
