package dto

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"modulus_backend/internals/features/academia/students/model"
)

func TestParseModalityTags(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantTags     []string
		wantFallback bool
	}{
		{
			name:     "array JSON canônico",
			raw:      `["musculação","natação"]`,
			wantTags: []string{"musculação", "natação"},
		},
		{
			name:         "string JSON carregando um array",
			raw:          `"[\"jiu-jitsu\"]"`,
			wantTags:     []string{"jiu-jitsu"},
			wantFallback: true,
		},
		{
			name:         "tag solta",
			raw:          `"crossfit"`,
			wantTags:     []string{"crossfit"},
			wantFallback: true,
		},
		{
			name:         "coluna vazia",
			raw:          ``,
			wantTags:     []string{ModalidadeNaoInformada},
			wantFallback: true,
		},
		{
			name:         "array vazio",
			raw:          `[]`,
			wantTags:     []string{ModalidadeNaoInformada},
			wantFallback: true,
		},
		{
			name:         "array só com espaços",
			raw:          `["  ",""]`,
			wantTags:     []string{ModalidadeNaoInformada},
			wantFallback: true,
		},
		{
			name:         "string vazia",
			raw:          `""`,
			wantTags:     []string{ModalidadeNaoInformada},
			wantFallback: true,
		},
		{
			name:         "lixo não JSON",
			raw:          `{oops`,
			wantTags:     []string{ModalidadeNaoInformada},
			wantFallback: true,
		},
		{
			name:     "duplicatas com caixa diferente",
			raw:      `["Natação","natação","box"]`,
			wantTags: []string{"Natação", "box"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseModalityTags(datatypes.JSON([]byte(tt.raw)))
			if !reflect.DeepEqual(got.Tags, tt.wantTags) {
				t.Errorf("tags = %v, esperado %v", got.Tags, tt.wantTags)
			}
			if got.FallbackUsed != tt.wantFallback {
				t.Errorf("fallback = %v, esperado %v", got.FallbackUsed, tt.wantFallback)
			}
		})
	}
}

func TestMarshalModalityTagsCanonical(t *testing.T) {
	raw := MarshalModalityTags([]string{" musculação ", "Natação", "natação", ""})
	got := ParseModalityTags(raw)
	want := []string{"musculação", "Natação"}
	if !reflect.DeepEqual(got.Tags, want) {
		t.Errorf("roundtrip = %v, esperado %v", got.Tags, want)
	}
	if got.FallbackUsed {
		t.Errorf("a forma canônica não pode acionar fallback")
	}
}

func TestCreateStudentRequestToModel(t *testing.T) {
	fee := 150.0
	req := CreateStudentRequest{
		Nome:           "  Maria Silva  ",
		Whatsapp:       "11999990000",
		Gender:         "Feminino",
		DataVencimento: "2025-07-10",
		Mensalidade:    &fee,
		Modalidades:    []string{"natação"},
	}

	academiaID := uuid.New()
	m, err := req.ToModel(academiaID)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if m.StudentNome != "Maria Silva" {
		t.Errorf("nome = %q, esperado aparado", m.StudentNome)
	}
	if m.StudentAcademiaID != academiaID {
		t.Errorf("academia_id não propagado")
	}
	if !m.StudentDataVencimento.Equal(time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("data_vencimento = %v", m.StudentDataVencimento)
	}
	if m.StudentMensalidade != 150 {
		t.Errorf("mensalidade = %v", m.StudentMensalidade)
	}
	if m.StudentClassesPerWeek != 1 {
		t.Errorf("classes_per_week deve assumir 1, veio %d", m.StudentClassesPerWeek)
	}
	if m.StudentStatus != model.StatusActive {
		t.Errorf("status = %q, esperado active", m.StudentStatus)
	}
}

func TestCreateStudentRequestToModelBadDate(t *testing.T) {
	fee := 100.0
	req := CreateStudentRequest{
		Nome:           "João",
		DataVencimento: "10/07/2025",
		Mensalidade:    &fee,
		Modalidades:    []string{"box"},
	}
	if _, err := req.ToModel(uuid.New()); err == nil {
		t.Errorf("data fora do formato AAAA-MM-DD deve falhar")
	}
}

func TestUpdateStudentRequestApplyTo(t *testing.T) {
	m := model.StudentModel{
		StudentNome:           "Antigo",
		StudentMensalidade:    100,
		StudentDataVencimento: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		StudentStatus:         model.StatusActive,
	}

	nome := "Novo Nome"
	due := "2025-08-01"
	status := model.StatusInactive
	req := UpdateStudentRequest{Nome: &nome, DataVencimento: &due, Status: &status}

	if err := req.ApplyTo(&m); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if m.StudentNome != "Novo Nome" {
		t.Errorf("nome não aplicado")
	}
	if m.StudentDataVencimento.Format("2006-01-02") != "2025-08-01" {
		t.Errorf("data_vencimento não aplicada")
	}
	if m.StudentStatus != model.StatusInactive {
		t.Errorf("status não aplicado")
	}
	if m.StudentMensalidade != 100 {
		t.Errorf("campo ausente no request não pode mudar")
	}

	bad := "01-08-2025"
	reqBad := UpdateStudentRequest{DataVencimento: &bad}
	if err := reqBad.ApplyTo(&m); err == nil {
		t.Errorf("data inválida deve falhar")
	}
}
