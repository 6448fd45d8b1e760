package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"modulus_backend/internals/features/academia/payments/dto"
	"modulus_backend/internals/features/academia/payments/model"
	"modulus_backend/internals/features/academia/payments/service"
	studentModel "modulus_backend/internals/features/academia/students/model"
	helper "modulus_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// POST /api/u/payments (multipart)
// Fluxo do aluno: envia o pagamento do mês, com comprovante opcional.
func (ctrl *PaymentController) Submit(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id inválido")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student,
		"student_id = ? AND student_academia_id = ?", studentID, academiaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	valor := student.StudentMensalidade
	if req.Valor != nil {
		valor = *req.Valor
	}

	orderID := uuid.New().String()
	payment := model.PaymentModel{
		PaymentAcademiaID: academiaID,
		PaymentStudentID:  student.StudentID,
		PaymentValor:      valor,
		PaymentData:       time.Now(),
		PaymentStatus:     model.StatusPending,
		PaymentOrderID:    &orderID,
	}
	if m := strings.TrimSpace(req.Modalidade); m != "" {
		payment.PaymentModalidade = &m
	}

	// comprovante é opcional
	if fileHeader, err := c.FormFile("comprovante"); err == nil && fileHeader != nil {
		url, upErr := helper.UploadImageToSupabase("comprovantes", fileHeader)
		if upErr != nil {
			log.Printf("[ERROR] upload comprovante: %v", upErr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao subir o comprovante")
		}
		payment.PaymentComprovanteURL = &url
	}

	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Printf("[ERROR] registrar pagamento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar o pagamento")
	}

	data := fiber.Map{"payment": dto.FromModel(&payment)}

	if req.UseGateway {
		userName, _ := c.Locals("user_name").(string)
		token, redirectURL, err := service.GenerateSnapToken(payment, userName, "")
		if err != nil {
			log.Printf("[ERROR] snap token: %v", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Falha ao iniciar o checkout")
		}
		data["snap_token"] = token
		data["redirect_url"] = redirectURL
	}

	return helper.JsonCreated(c, "Pagamento enviado para análise.", data)
}

// POST /api/a/payments/approve
// payment_id nulo: registra aprovado com a data de hoje e rola o vencimento.
func (ctrl *PaymentController) Approve(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	var req dto.ApprovePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id inválido")
	}
	var paymentID *uuid.UUID
	if req.PaymentID != nil && strings.TrimSpace(*req.PaymentID) != "" {
		id, err := uuid.Parse(*req.PaymentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "payment_id inválido")
		}
		paymentID = &id
	}

	payment, err := service.Approve(ctrl.DB, academiaID, studentID, paymentID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound), errors.Is(err, service.ErrStudentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyProcessed):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			log.Printf("[ERROR] aprovar pagamento: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao aprovar o pagamento")
		}
	}

	resp := dto.FromModel(payment)
	return helper.JsonUpdated(c, "Pagamento aprovado e vencimento atualizado.", resp)
}

// POST /api/a/payments/manual
func (ctrl *PaymentController) RegisterManual(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	var req dto.ManualPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id inválido")
	}

	payment, err := service.RegisterManual(ctrl.DB, academiaID, studentID, req.Valor, req.Modalidade, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrModalidadeNeeded):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("[ERROR] registrar pagamento manual: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar o pagamento")
		}
	}

	resp := dto.FromModel(payment)
	return helper.JsonCreated(c,
		"Pagamento de "+helper.FormatBRL(payment.PaymentValor)+" registrado e vencimento atualizado.",
		resp)
}

// POST /api/a/payments/reject
func (ctrl *PaymentController) Reject(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	var req dto.RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_id inválido")
	}

	payment, err := service.Reject(ctrl.DB, academiaID, paymentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyProcessed):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			log.Printf("[ERROR] rejeitar pagamento: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao rejeitar o pagamento")
		}
	}

	resp := dto.FromModel(payment)
	return helper.JsonUpdated(c, "Pagamento rejeitado.", resp)
}

// GET /api/a/payments?student_id=&status=
func (ctrl *PaymentController) GetAll(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_academia_id = ?", academiaID)
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id inválido")
		}
		q = q.Where("payment_student_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar pagamentos")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar pagamentos")
	}

	return helper.JsonList(c, "Pagamentos carregados.", dto.FromModels(payments),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/payments/notification (público, assinado pelo gateway)
func (ctrl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	if !service.VerifyWebhookSignature(body) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Assinatura inválida")
	}

	if err := service.HandlePaymentStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "ok", nil)
}
