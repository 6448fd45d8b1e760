package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"modulus_backend/internals/features/academia/students/model"
)

// ModalidadeNaoInformada é o rótulo usado quando o aluno não tem
// nenhuma modalidade registrada.
const ModalidadeNaoInformada = "Não Informado"

// ModalityTags é o resultado já desambiguado da coluna JSONB.
// FallbackUsed indica que a linha estava num formato legado (string JSON
// ou tag solta) ou vazia.
type ModalityTags struct {
	Tags         []string
	FallbackUsed bool
}

// ParseModalityTags aceita os três formatos que já circularam na coluna:
//   - array JSON:  ["musculação","natação"]
//   - string JSON: "[\"musculação\"]"
//   - tag solta:   "musculação"
// Vazio (ou só lixo) vira a tag sentinela.
func ParseModalityTags(raw datatypes.JSON) ModalityTags {
	b := []byte(raw)
	if len(b) == 0 {
		return ModalityTags{Tags: []string{ModalidadeNaoInformada}, FallbackUsed: true}
	}

	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		if tags := cleanTags(arr); len(tags) > 0 {
			return ModalityTags{Tags: tags}
		}
		return ModalityTags{Tags: []string{ModalidadeNaoInformada}, FallbackUsed: true}
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		s = strings.TrimSpace(s)
		// string que carrega um array JSON dentro
		if strings.HasPrefix(s, "[") {
			var inner []string
			if err := json.Unmarshal([]byte(s), &inner); err == nil {
				if tags := cleanTags(inner); len(tags) > 0 {
					return ModalityTags{Tags: tags, FallbackUsed: true}
				}
			}
			return ModalityTags{Tags: []string{ModalidadeNaoInformada}, FallbackUsed: true}
		}
		if s != "" {
			return ModalityTags{Tags: []string{s}, FallbackUsed: true}
		}
	}

	return ModalityTags{Tags: []string{ModalidadeNaoInformada}, FallbackUsed: true}
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// MarshalModalityTags grava sempre a forma canônica (array JSON).
func MarshalModalityTags(tags []string) datatypes.JSON {
	b, _ := json.Marshal(cleanTags(tags))
	return datatypes.JSON(b)
}

// ===== Requests =====

type CreateStudentRequest struct {
	Nome           string   `json:"nome" validate:"required,min=2,max=100"`
	Whatsapp       string   `json:"whatsapp" validate:"omitempty,max=30"`
	Gender         string   `json:"gender" validate:"omitempty,max=20"`
	DataVencimento string   `json:"data_vencimento" validate:"required"`
	Mensalidade    *float64 `json:"mensalidade" validate:"required,gte=0"`
	Modalidades    []string `json:"modalidades" validate:"required,min=1,dive,min=1"`
	ClassesPerWeek int      `json:"classes_per_week" validate:"omitempty,gte=1,lte=7"`
}

// ToModel monta o aluno já ativo; a data de vencimento chega como
// "2006-01-02" (mesmo formato da coluna date).
func (r *CreateStudentRequest) ToModel(academiaID uuid.UUID) (model.StudentModel, error) {
	due, err := time.Parse("2006-01-02", strings.TrimSpace(r.DataVencimento))
	if err != nil {
		return model.StudentModel{}, err
	}
	classes := r.ClassesPerWeek
	if classes <= 0 {
		classes = 1
	}
	return model.StudentModel{
		StudentAcademiaID:     academiaID,
		StudentNome:           strings.TrimSpace(r.Nome),
		StudentWhatsapp:       strings.TrimSpace(r.Whatsapp),
		StudentGender:         strings.TrimSpace(r.Gender),
		StudentDataVencimento: due,
		StudentMensalidade:    *r.Mensalidade,
		StudentModalidades:    MarshalModalityTags(r.Modalidades),
		StudentClassesPerWeek: classes,
		StudentStatus:         model.StatusActive,
	}, nil
}

type UpdateStudentRequest struct {
	Nome           *string   `json:"nome" validate:"omitempty,min=2,max=100"`
	Whatsapp       *string   `json:"whatsapp" validate:"omitempty,max=30"`
	Gender         *string   `json:"gender" validate:"omitempty,max=20"`
	DataVencimento *string   `json:"data_vencimento"`
	Mensalidade    *float64  `json:"mensalidade" validate:"omitempty,gte=0"`
	Modalidades    *[]string `json:"modalidades" validate:"omitempty,min=1,dive,min=1"`
	ClassesPerWeek *int      `json:"classes_per_week" validate:"omitempty,gte=1,lte=7"`
	Status         *string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateStudentRequest) ApplyTo(m *model.StudentModel) error {
	if r.Nome != nil {
		m.StudentNome = strings.TrimSpace(*r.Nome)
	}
	if r.Whatsapp != nil {
		m.StudentWhatsapp = strings.TrimSpace(*r.Whatsapp)
	}
	if r.Gender != nil {
		m.StudentGender = strings.TrimSpace(*r.Gender)
	}
	if r.DataVencimento != nil {
		due, err := time.Parse("2006-01-02", strings.TrimSpace(*r.DataVencimento))
		if err != nil {
			return err
		}
		m.StudentDataVencimento = due
	}
	if r.Mensalidade != nil {
		m.StudentMensalidade = *r.Mensalidade
	}
	if r.Modalidades != nil {
		m.StudentModalidades = MarshalModalityTags(*r.Modalidades)
	}
	if r.ClassesPerWeek != nil {
		m.StudentClassesPerWeek = *r.ClassesPerWeek
	}
	if r.Status != nil {
		m.StudentStatus = *r.Status
	}
	return nil
}

// ===== Responses =====

type StudentResponse struct {
	StudentID      uuid.UUID `json:"student_id"`
	Nome           string    `json:"nome"`
	Whatsapp       string    `json:"whatsapp,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	DataVencimento string    `json:"data_vencimento"`
	Mensalidade    float64   `json:"mensalidade"`
	Modalidades    []string  `json:"modalidades"`
	ClassesPerWeek int       `json:"classes_per_week"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:      m.StudentID,
		Nome:           m.StudentNome,
		Whatsapp:       m.StudentWhatsapp,
		Gender:         m.StudentGender,
		DataVencimento: m.StudentDataVencimento.Format("2006-01-02"),
		Mensalidade:    m.StudentMensalidade,
		Modalidades:    ParseModalityTags(m.StudentModalidades).Tags,
		ClassesPerWeek: m.StudentClassesPerWeek,
		Status:         m.StudentStatus,
		CreatedAt:      m.StudentCreatedAt,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
