package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"modulus_backend/internals/features/academia/dashboard/service"
	paymentModel "modulus_backend/internals/features/academia/payments/model"
	studentModel "modulus_backend/internals/features/academia/students/model"
	helper "modulus_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/a/dashboard/stats
// Se a leitura falhar o painel recebe tudo zerado em vez de quebrar.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	now := time.Now()

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_academia_id = ?", academiaID).
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] dashboard: carregar alunos: %v", err)
		return helper.JsonOK(c, "Painel carregado.", service.DashboardStats{
			PendingPayments: []service.AuditRow{},
		})
	}

	var payments []paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_academia_id = ? AND payment_validated_at >= ?",
			academiaID, time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())).
		Or("payment_academia_id = ? AND payment_status = ?", academiaID, paymentModel.StatusPending).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] dashboard: carregar pagamentos: %v", err)
		return helper.JsonOK(c, "Painel carregado.", service.DashboardStats{
			PendingPayments: []service.AuditRow{},
		})
	}

	stats := service.ComputeDashboardStats(students, payments, now)
	return helper.JsonOK(c, "Painel carregado.", stats)
}

// GET /api/a/dashboard/segmentation
func (ctrl *DashboardController) GetSegmentation(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_academia_id = ?", academiaID).
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] segmentação: carregar alunos: %v", err)
		return helper.JsonOK(c, "Segmentação carregada.", service.SegmentationData{
			Modalities: map[string]service.ModalitySegment{},
			Revenue:    map[string]float64{},
		})
	}

	data := service.ComputeSegmentation(students)
	return helper.JsonOK(c, "Segmentação carregada.", data)
}

// GET /api/a/dashboard/audit
// Situação de cobrança de todos os alunos ativos (paid/pending/overdue/open).
func (ctrl *DashboardController) GetAudit(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	now := time.Now()

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_academia_id = ?", academiaID).
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] auditoria: carregar alunos: %v", err)
		return helper.JsonOK(c, "Auditoria carregada.", []service.AuditRow{})
	}

	var payments []paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_academia_id = ?", academiaID).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] auditoria: carregar pagamentos: %v", err)
		return helper.JsonOK(c, "Auditoria carregada.", []service.AuditRow{})
	}

	rows := service.BuildAuditRows(students, payments, now)
	return helper.JsonOK(c, "Auditoria carregada.", rows)
}
