package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "modulus_backend/internals/features/users/auth/helper"
	"modulus_backend/internals/features/users/user/dto"
	"modulus_backend/internals/features/users/user/model"
	helper "modulus_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// GET /api/o/users
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] contar usuários: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] listar usuários: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	return helper.JsonList(c, "Usuários carregados.", dto.FromModels(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/o/users/:id
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}

	resp := dto.FromModel(&user)
	return helper.JsonOK(c, "Usuário carregado.", resp)
}

// POST /api/o/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
	}

	user := model.UserModel{
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
		IsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		log.Printf("[ERROR] criar usuário: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	resp := dto.FromModel(&user)
	return helper.JsonCreated(c, "Usuário criado com sucesso.", resp)
}

// PUT /api/o/users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}

	if req.Password != nil {
		hash, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
		}
		req.Password = &hash
	}
	req.ApplyTo(&user)

	if err := ctrl.DB.Save(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		log.Printf("[ERROR] atualizar usuário: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar usuário")
	}

	resp := dto.FromModel(&user)
	return helper.JsonUpdated(c, "Usuário atualizado com sucesso.", resp)
}

// DELETE /api/o/users/:id
// Remove primeiro os vínculos com academias, depois o usuário.
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}

	tx := ctrl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec(`DELETE FROM academia_members WHERE academia_member_user_id = ?`, id).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] remover vínculos do usuário %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover vínculos do usuário")
	}
	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] remover usuário %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover usuário")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao concluir a remoção")
	}

	return helper.JsonDeleted(c, "Usuário removido com sucesso.", fiber.Map{"id": id})
}
