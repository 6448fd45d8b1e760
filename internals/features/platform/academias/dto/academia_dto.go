package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"modulus_backend/internals/features/platform/academias/model"
)

// ===== Requests =====

// ProvisionAcademiaRequest cria, numa tacada só, o dono + a academia +
// o vínculo de owner + o módulo habilitado.
type ProvisionAcademiaRequest struct {
	AcademiaName string   `json:"academia_name" validate:"required,min=3,max=100"`
	Modalidades  []string `json:"modalidades" validate:"omitempty,dive,min=1"`

	OwnerUserName string `json:"owner_user_name" validate:"required,min=3,max=50"`
	OwnerEmail    string `json:"owner_email" validate:"required,email"`
	OwnerPassword string `json:"owner_password" validate:"required,min=8"`
}

type UpdateAcademiaRequest struct {
	AcademiaName *string   `json:"academia_name" validate:"omitempty,min=3,max=100"`
	Status       *string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Modalidades  *[]string `json:"modalidades" validate:"omitempty,dive,min=1"`
}

func (r *UpdateAcademiaRequest) ApplyTo(m *model.AcademiaModel) {
	if r.AcademiaName != nil {
		m.AcademiaName = strings.TrimSpace(*r.AcademiaName)
	}
	if r.Status != nil {
		m.AcademiaStatus = *r.Status
	}
	if r.Modalidades != nil {
		m.AcademiaModalidades = normalizeModalidades(*r.Modalidades)
	}
}

func normalizeModalidades(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, m := range in {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

func (r *ProvisionAcademiaRequest) ToModel(slug string) model.AcademiaModel {
	return model.AcademiaModel{
		AcademiaName:        strings.TrimSpace(r.AcademiaName),
		AcademiaSlug:        slug,
		AcademiaStatus:      "active",
		AcademiaModalidades: normalizeModalidades(r.Modalidades),
	}
}

// ===== Responses =====

type AcademiaResponse struct {
	AcademiaID  uuid.UUID `json:"academia_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Modalidades []string  `json:"modalidades"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m *model.AcademiaModel) AcademiaResponse {
	return AcademiaResponse{
		AcademiaID:  m.AcademiaID,
		Name:        m.AcademiaName,
		Slug:        m.AcademiaSlug,
		Status:      m.AcademiaStatus,
		LogoURL:     m.AcademiaLogoURL,
		Modalidades: m.AcademiaModalidades,
		CreatedAt:   m.AcademiaCreatedAt,
		UpdatedAt:   m.AcademiaUpdatedAt,
	}
}

func FromModels(ms []model.AcademiaModel) []AcademiaResponse {
	out := make([]AcademiaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
