package helper

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("Nome de usuário é obrigatório")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("E-mail é obrigatório")
	}
	if len(password) < 8 {
		return errors.New("Senha precisa de pelo menos 8 caracteres")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("Informe e-mail ou nome de usuário")
	}
	if password == "" {
		return errors.New("Informe a senha")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
