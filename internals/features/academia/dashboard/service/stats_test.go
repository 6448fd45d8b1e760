package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	paymentModel "modulus_backend/internals/features/academia/payments/model"
	studentModel "modulus_backend/internals/features/academia/students/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tptr(t time.Time) *time.Time { return &t }

func student(nome string, fee float64, due time.Time, status string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:             uuid.New(),
		StudentNome:           nome,
		StudentMensalidade:    fee,
		StudentDataVencimento: due,
		StudentStatus:         status,
		StudentModalidades:    datatypes.JSON([]byte(`["musculação"]`)),
		StudentClassesPerWeek: 3,
	}
}

func approved(studentID uuid.UUID, valor float64, validatedAt time.Time) paymentModel.PaymentModel {
	return paymentModel.PaymentModel{
		PaymentID:          uuid.New(),
		PaymentStudentID:   studentID,
		PaymentValor:       valor,
		PaymentData:        validatedAt,
		PaymentStatus:      paymentModel.StatusApproved,
		PaymentValidatedAt: tptr(validatedAt),
	}
}

func pending(studentID uuid.UUID, valor float64, data time.Time) paymentModel.PaymentModel {
	return paymentModel.PaymentModel{
		PaymentID:        uuid.New(),
		PaymentStudentID: studentID,
		PaymentValor:     valor,
		PaymentData:      data,
		PaymentStatus:    paymentModel.StatusPending,
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil, date(2025, time.June, 15))

	if stats.AnnualRevenue != 0 || stats.MonthlyReceived != 0 ||
		stats.MonthlyExpected != 0 || stats.MonthlyMissing != 0 ||
		stats.NextMonthForecast != 0 || stats.TotalStudents != 0 {
		t.Errorf("sem dados todos os KPIs devem ser zero: %+v", stats)
	}
	if len(stats.PendingPayments) != 0 {
		t.Errorf("sem dados a lista de pendências deve ser vazia")
	}
}

func TestComputeDashboardStatsKPIs(t *testing.T) {
	now := date(2025, time.June, 15)

	s1 := student("Ana", 100, date(2025, time.June, 20), studentModel.StatusActive)
	s2 := student("Bruno", 150, date(2025, time.June, 5), studentModel.StatusActive)
	s3 := student("Carla", 200, date(2025, time.July, 1), studentModel.StatusActive)
	s4 := student("Inativo", 999, date(2025, time.June, 10), studentModel.StatusInactive)
	students := []studentModel.StudentModel{s1, s2, s3, s4}

	payments := []paymentModel.PaymentModel{
		approved(s1.StudentID, 100, date(2025, time.June, 2)),     // conta no mês e no ano
		approved(s2.StudentID, 150, date(2025, time.March, 10)),   // só no ano
		approved(s3.StudentID, 200, date(2024, time.December, 1)), // ano anterior: fora
	}

	stats := ComputeDashboardStats(students, payments, now)

	if stats.AnnualRevenue != 250 {
		t.Errorf("AnnualRevenue = %v, esperado 250", stats.AnnualRevenue)
	}
	if stats.MonthlyReceived != 100 {
		t.Errorf("MonthlyReceived = %v, esperado 100", stats.MonthlyReceived)
	}
	// esperado do mês: s1 (100) + s2 (150) vencem em junho; s3 em julho; inativo fora
	if stats.MonthlyExpected != 250 {
		t.Errorf("MonthlyExpected = %v, esperado 250", stats.MonthlyExpected)
	}
	if stats.MonthlyMissing != 150 {
		t.Errorf("MonthlyMissing = %v, esperado 150", stats.MonthlyMissing)
	}
	// previsão: soma das mensalidades de todos os ativos
	if stats.NextMonthForecast != 450 {
		t.Errorf("NextMonthForecast = %v, esperado 450", stats.NextMonthForecast)
	}
	if stats.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, esperado 3", stats.TotalStudents)
	}
}

func TestComputeDashboardStatsMissingNeverNegative(t *testing.T) {
	now := date(2025, time.June, 15)

	s1 := student("Ana", 100, date(2025, time.June, 20), studentModel.StatusActive)
	payments := []paymentModel.PaymentModel{
		// recebeu mais do que o esperado no mês
		approved(s1.StudentID, 500, date(2025, time.June, 2)),
	}

	stats := ComputeDashboardStats([]studentModel.StudentModel{s1}, payments, now)
	if stats.MonthlyMissing != 0 {
		t.Errorf("MonthlyMissing = %v, nunca pode ser negativo", stats.MonthlyMissing)
	}
}

func TestBuildAuditRowsClassification(t *testing.T) {
	now := date(2025, time.June, 15)

	paid := student("Paga", 100, date(2025, time.June, 20), studentModel.StatusActive)
	pend := student("Pendente", 120, date(2025, time.June, 18), studentModel.StatusActive)
	over := student("Atrasada", 130, date(2025, time.June, 1), studentModel.StatusActive)
	open := student("EmDia", 140, date(2025, time.June, 25), studentModel.StatusActive)
	inactive := student("Inativa", 150, date(2025, time.June, 1), studentModel.StatusInactive)

	students := []studentModel.StudentModel{paid, pend, over, open, inactive}
	payments := []paymentModel.PaymentModel{
		approved(paid.StudentID, 100, date(2025, time.June, 3)),
		pending(pend.StudentID, 120, date(2025, time.June, 10)),
	}

	rows := BuildAuditRows(students, payments, now)
	if len(rows) != 4 {
		t.Fatalf("esperava 4 linhas (inativos fora), veio %d", len(rows))
	}

	byName := map[string]AuditRow{}
	for _, r := range rows {
		byName[r.Nome] = r
	}

	tests := []struct {
		nome       string
		wantStatus string
		wantValor  float64
		wantData   string
		wantHasPay bool
	}{
		{"Paga", AuditPaid, 100, "2025-06-03", true},
		{"Pendente", AuditPending, 120, "2025-06-10", true},
		{"Atrasada", AuditOverdue, 130, "2025-06-01", false},
		{"EmDia", AuditOpen, 140, "2025-06-25", false},
	}
	for _, tt := range tests {
		row, ok := byName[tt.nome]
		if !ok {
			t.Fatalf("linha de %q não encontrada", tt.nome)
		}
		if row.Status != tt.wantStatus {
			t.Errorf("%s: status = %q, esperado %q", tt.nome, row.Status, tt.wantStatus)
		}
		if row.Valor != tt.wantValor {
			t.Errorf("%s: valor = %v, esperado %v", tt.nome, row.Valor, tt.wantValor)
		}
		if row.Data != tt.wantData {
			t.Errorf("%s: data = %q, esperada %q", tt.nome, row.Data, tt.wantData)
		}
		if (row.PaymentID != nil) != tt.wantHasPay {
			t.Errorf("%s: payment_id presente = %v, esperado %v", tt.nome, row.PaymentID != nil, tt.wantHasPay)
		}
	}
}

func TestPendingPaymentsListsPendingAndOverdue(t *testing.T) {
	now := date(2025, time.June, 15)

	pend := student("Pendente", 120, date(2025, time.June, 18), studentModel.StatusActive)
	over := student("Atrasada", 130, date(2025, time.June, 1), studentModel.StatusActive)
	open := student("EmDia", 140, date(2025, time.June, 25), studentModel.StatusActive)

	students := []studentModel.StudentModel{pend, over, open}
	payments := []paymentModel.PaymentModel{
		pending(pend.StudentID, 120, date(2025, time.June, 10)),
	}

	stats := ComputeDashboardStats(students, payments, now)
	if len(stats.PendingPayments) != 2 {
		t.Fatalf("esperava 2 pendências (pending + overdue), veio %d", len(stats.PendingPayments))
	}
	for _, row := range stats.PendingPayments {
		if row.Status != AuditPending && row.Status != AuditOverdue {
			t.Errorf("pendência com status inesperado %q", row.Status)
		}
	}
}

func TestComputeDashboardStatsIdempotent(t *testing.T) {
	now := date(2025, time.June, 15)
	s := student("Ana", 100, date(2025, time.June, 20), studentModel.StatusActive)
	students := []studentModel.StudentModel{s}
	payments := []paymentModel.PaymentModel{approved(s.StudentID, 100, date(2025, time.June, 2))}

	a := ComputeDashboardStats(students, payments, now)
	b := ComputeDashboardStats(students, payments, now)

	if a.AnnualRevenue != b.AnnualRevenue || a.MonthlyReceived != b.MonthlyReceived ||
		a.MonthlyExpected != b.MonthlyExpected || a.TotalStudents != b.TotalStudents {
		t.Errorf("duas execuções com o mesmo input divergiram: %+v vs %+v", a, b)
	}
}
