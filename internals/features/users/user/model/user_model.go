package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// UserModel representa a tabela users
type UserModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string         `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName  *string        `gorm:"size:100" json:"full_name,omitempty" validate:"omitempty,max=100"`
	Email     string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string         `gorm:"not null" json:"password,omitempty" validate:"required,min=8"`
	GoogleID  *string        `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role      string         `gorm:"type:varchar(20);not null;default:'member'" json:"role" validate:"omitempty,oneof=owner admin staff member"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "member"
	}
}

// Validate aplica as regras declaradas nas tags
func (u *UserModel) Validate() error {
	u.SetDefaultValues()
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " é obrigatório."
			case "email":
				errorMessages[fieldErr.Field()] = "Formato de e-mail inválido."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " precisa de pelo menos " + fieldErr.Param() + " caracteres."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " deve ter no máximo " + fieldErr.Param() + " caracteres."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " deve ser um de: " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Formato inválido."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
