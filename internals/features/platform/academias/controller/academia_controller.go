package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"modulus_backend/internals/constants"
	"modulus_backend/internals/features/platform/academias/dto"
	"modulus_backend/internals/features/platform/academias/model"
	authHelper "modulus_backend/internals/features/users/auth/helper"
	userModel "modulus_backend/internals/features/users/user/model"
	helper "modulus_backend/internals/helpers"
)

type AcademiaController struct {
	DB *gorm.DB
}

func NewAcademiaController(db *gorm.DB) *AcademiaController {
	return &AcademiaController{DB: db}
}

var validate = validator.New()

// POST /api/o/academias
// Provisiona um tenant completo: usuário dono → academia → vínculo owner →
// módulo habilitado. Tudo ou nada.
func (ctrl *AcademiaController) Provision(c *fiber.Ctx) error {
	var req dto.ProvisionAcademiaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	base := helper.GenerateSlug(req.AcademiaName)
	if base == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nome da academia inválido")
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "academias", "academia_slug")
	if err != nil {
		log.Printf("[ERROR] slug único: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar slug da academia")
	}

	passwordHash, err := authHelper.HashPassword(req.OwnerPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
	}

	owner := userModel.UserModel{
		UserName: req.OwnerUserName,
		Email:    req.OwnerEmail,
		Password: passwordHash,
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	academia := req.ToModel(slug)

	tx := ctrl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&owner).Error; err != nil {
		tx.Rollback()
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail do dono já cadastrado")
		}
		log.Printf("[ERROR] criar dono: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar o usuário dono")
	}

	if err := tx.Create(&academia).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] criar academia: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar a academia")
	}

	member := model.AcademiaMemberModel{
		AcademiaMemberAcademiaID: academia.AcademiaID,
		AcademiaMemberUserID:     owner.ID,
		AcademiaMemberRole:       "owner",
	}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] criar vínculo owner: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao vincular o dono à academia")
	}

	module := model.AcademiaModuleModel{
		AcademiaModuleAcademiaID: academia.AcademiaID,
		AcademiaModuleModuleID:   constants.ModuleAcademia,
		AcademiaModuleIsEnabled:  true,
	}
	if err := tx.Create(&module).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] habilitar módulo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao habilitar o módulo da academia")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao concluir o provisionamento")
	}

	resp := dto.FromModel(&academia)
	return helper.JsonCreated(c, "Academia provisionada com sucesso.", fiber.Map{
		"academia": resp,
		"owner": fiber.Map{
			"id":        owner.ID,
			"user_name": owner.UserName,
			"email":     owner.Email,
		},
	})
}

// GET /api/o/academias
func (ctrl *AcademiaController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AcademiaModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("academia_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar academias")
	}

	var academias []model.AcademiaModel
	if err := q.Order("academia_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&academias).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar academias")
	}

	return helper.JsonList(c, "Academias carregadas.", dto.FromModels(academias),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/o/academias/:id
func (ctrl *AcademiaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var academia model.AcademiaModel
	if err := ctrl.DB.First(&academia, "academia_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Academia não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar academia")
	}

	resp := dto.FromModel(&academia)
	return helper.JsonOK(c, "Academia carregada.", resp)
}

// PUT /api/o/academias/:id
func (ctrl *AcademiaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateAcademiaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var academia model.AcademiaModel
	if err := ctrl.DB.First(&academia, "academia_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Academia não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar academia")
	}

	req.ApplyTo(&academia)
	if err := ctrl.DB.Save(&academia).Error; err != nil {
		log.Printf("[ERROR] atualizar academia %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar academia")
	}

	resp := dto.FromModel(&academia)
	return helper.JsonUpdated(c, "Academia atualizada com sucesso.", resp)
}

// PATCH /api/o/academias/:id/logo (multipart: logo)
func (ctrl *AcademiaController) UploadLogo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var academia model.AcademiaModel
	if err := ctrl.DB.First(&academia, "academia_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Academia não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar academia")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo de logo ausente")
	}

	url, err := helper.UploadImageToSupabase("academias", fileHeader)
	if err != nil {
		log.Printf("[ERROR] upload logo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao subir o logo")
	}

	// logo anterior sai do storage, best effort
	if old := helper.ExtractSupabaseStoragePath(academia.AcademiaLogoURL); old != "" {
		if err := helper.DeleteFromSupabase("image", old); err != nil {
			log.Printf("[WARN] remover logo antigo: %v", err)
		}
	}

	academia.AcademiaLogoURL = url
	if err := ctrl.DB.Model(&academia).
		Update("academia_logo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar o logo")
	}

	return helper.JsonUpdated(c, "Logo atualizado com sucesso.", fiber.Map{"logo_url": url})
}

// DELETE /api/o/academias/:id (soft delete)
func (ctrl *AcademiaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("academia_id = ?", id).Delete(&model.AcademiaModel{})
	if res.Error != nil {
		log.Printf("[ERROR] remover academia %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover academia")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Academia não encontrada")
	}

	return helper.JsonDeleted(c, "Academia removida com sucesso.", fiber.Map{"academia_id": id})
}
