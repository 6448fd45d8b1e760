package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"modulus_backend/internals/features/academia/students/dto"
	"modulus_backend/internals/features/academia/students/model"
	academiaModel "modulus_backend/internals/features/platform/academias/model"
	helper "modulus_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

const searchLimitMax = 20

// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	// mensagens diretas para os erros mais comuns do formulário
	if strings.TrimSpace(req.Nome) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "O nome do aluno é obrigatório.")
	}
	if req.Mensalidade == nil || *req.Mensalidade < 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Mensalidade inválida.")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// modalidades precisam existir no catálogo da academia, quando houver um
	if err := ctrl.ensureModalidadesInCatalog(academiaID, req.Modalidades); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	student, err := req.ToModel(academiaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Data de vencimento inválida (use AAAA-MM-DD).")
	}

	if err := ctrl.DB.Create(&student).Error; err != nil {
		log.Printf("[ERROR] cadastrar aluno: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cadastrar o aluno")
	}

	resp := dto.FromModel(&student)
	return helper.JsonCreated(c, "Aluno cadastrado com sucesso.", resp)
}

func (ctrl *StudentController) ensureModalidadesInCatalog(academiaID uuid.UUID, modalidades []string) error {
	var academia academiaModel.AcademiaModel
	if err := ctrl.DB.Select("academia_modalidades").
		First(&academia, "academia_id = ?", academiaID).Error; err != nil {
		// sem linha do tenant não dá pra validar; deixa o cadastro seguir
		return nil
	}
	if len(academia.AcademiaModalidades) == 0 {
		return nil
	}

	catalog := map[string]struct{}{}
	for _, m := range academia.AcademiaModalidades {
		catalog[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}
	for _, m := range modalidades {
		if _, ok := catalog[strings.ToLower(strings.TrimSpace(m))]; !ok {
			return errors.New("Modalidade não oferecida pela academia: " + m)
		}
	}
	return nil
}

// GET /api/a/students/search?q=...&limit=...
// Busca por substring do nome (case-insensitive), ordenada pelo
// vencimento mais próximo.
func (ctrl *StudentController) Search(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonOK(c, "ok", []dto.StudentResponse{})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > searchLimitMax {
		limit = searchLimitMax
	}

	var students []model.StudentModel
	if err := ctrl.DB.
		Where("student_academia_id = ? AND student_nome ILIKE ?", academiaID, "%"+q+"%").
		Order("student_data_vencimento ASC").
		Limit(limit).
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] buscar alunos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar alunos")
	}

	return helper.JsonOK(c, "ok", dto.FromModels(students))
}

// GET /api/a/students
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_academia_id = ?", academiaID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	var students []model.StudentModel
	if err := q.Order("student_data_vencimento ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	return helper.JsonList(c, "Alunos carregados.", dto.FromModels(students),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var student model.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_academia_id = ?", id, academiaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	resp := dto.FromModel(&student)
	return helper.JsonOK(c, "Aluno carregado.", resp)
}

// PUT /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.Modalidades != nil {
		if err := ctrl.ensureModalidadesInCatalog(academiaID, *req.Modalidades); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
	}

	var student model.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_academia_id = ?", id, academiaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	if err := req.ApplyTo(&student); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Data de vencimento inválida (use AAAA-MM-DD).")
	}
	if err := ctrl.DB.Save(&student).Error; err != nil {
		log.Printf("[ERROR] atualizar aluno %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar o aluno")
	}

	resp := dto.FromModel(&student)
	return helper.JsonUpdated(c, "Aluno atualizado com sucesso.", resp)
}

// PATCH /api/a/students/:id/deactivate
func (ctrl *StudentController) Deactivate(c *fiber.Ctx) error {
	academiaID, err := helper.GetAcademiaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nenhuma academia associada ao seu usuário")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND student_academia_id = ?", id, academiaID).
		Update("student_status", model.StatusInactive)
	if res.Error != nil {
		log.Printf("[ERROR] desativar aluno %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desativar o aluno")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}

	return helper.JsonUpdated(c, "Aluno desativado.", fiber.Map{"student_id": id})
}
