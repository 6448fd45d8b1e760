package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	studentModel "modulus_backend/internals/features/academia/students/model"
)

func segStudent(gender string, fee float64, classes int, modalidades string, status string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:             uuid.New(),
		StudentNome:           "Aluno",
		StudentGender:         gender,
		StudentMensalidade:    fee,
		StudentDataVencimento: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		StudentModalidades:    datatypes.JSON([]byte(modalidades)),
		StudentClassesPerWeek: classes,
		StudentStatus:         status,
	}
}

func TestComputeSegmentationEmpty(t *testing.T) {
	data := ComputeSegmentation(nil)
	if len(data.Modalities) != 0 {
		t.Errorf("sem alunos o mapa de modalidades deve ser vazio")
	}
	if len(data.Revenue) != 0 {
		t.Errorf("sem alunos o mapa de receita deve ser vazio")
	}
}

func TestComputeSegmentationGenderBuckets(t *testing.T) {
	students := []studentModel.StudentModel{
		segStudent("Masculino", 100, 3, `["jiu-jitsu"]`, studentModel.StatusActive),
		segStudent("masculino", 100, 3, `["jiu-jitsu"]`, studentModel.StatusActive),
		segStudent("Feminino", 100, 3, `["jiu-jitsu"]`, studentModel.StatusActive),
		segStudent("", 100, 3, `["jiu-jitsu"]`, studentModel.StatusActive),
		segStudent("outro", 100, 3, `["jiu-jitsu"]`, studentModel.StatusActive),
	}

	data := ComputeSegmentation(students)
	seg, ok := data.Modalities["jiu-jitsu"]
	if !ok {
		t.Fatalf("modalidade jiu-jitsu ausente")
	}
	if seg.Total != 5 {
		t.Errorf("total = %d, esperado 5", seg.Total)
	}
	split := seg.Frequencies["3x"]
	if split.Masc != 2 {
		t.Errorf("masc = %d, esperado 2 (apenas prefixo m/M)", split.Masc)
	}
	if split.Fem != 3 {
		t.Errorf("fem = %d, esperado 3 (inclui vazio e não reconhecido)", split.Fem)
	}
	if split.Total != 5 {
		t.Errorf("total da frequência = %d, esperado 5", split.Total)
	}
}

func TestComputeSegmentationFrequencyKeys(t *testing.T) {
	students := []studentModel.StudentModel{
		segStudent("Feminino", 100, 2, `["natação"]`, studentModel.StatusActive),
		segStudent("Feminino", 100, 5, `["natação"]`, studentModel.StatusActive),
	}

	data := ComputeSegmentation(students)
	seg := data.Modalities["natação"]
	if _, ok := seg.Frequencies["2x"]; !ok {
		t.Errorf("esperava a chave de frequência \"2x\"")
	}
	if _, ok := seg.Frequencies["5x"]; !ok {
		t.Errorf("esperava a chave de frequência \"5x\"")
	}
}

func TestComputeSegmentationRevenueApportionment(t *testing.T) {
	students := []studentModel.StudentModel{
		// duas modalidades: a mensalidade é dividida igualmente
		segStudent("Masculino", 200, 3, `["musculação","natação"]`, studentModel.StatusActive),
		segStudent("Feminino", 100, 3, `["musculação"]`, studentModel.StatusActive),
	}

	data := ComputeSegmentation(students)
	if got := data.Revenue["musculação"]; got != 200 {
		t.Errorf("receita de musculação = %v, esperado 200 (100 + 200/2)", got)
	}
	if got := data.Revenue["natação"]; got != 100 {
		t.Errorf("receita de natação = %v, esperado 100 (200/2)", got)
	}
}

func TestComputeSegmentationSentinelAndInactive(t *testing.T) {
	students := []studentModel.StudentModel{
		segStudent("Feminino", 80, 1, `[]`, studentModel.StatusActive),
		segStudent("Masculino", 999, 3, `["box"]`, studentModel.StatusInactive),
	}

	data := ComputeSegmentation(students)
	seg, ok := data.Modalities["Não Informado"]
	if !ok {
		t.Fatalf("aluno sem modalidade deve cair no rótulo sentinela")
	}
	if seg.Total != 1 {
		t.Errorf("total do sentinela = %d, esperado 1", seg.Total)
	}
	if _, ok := data.Modalities["box"]; ok {
		t.Errorf("alunos inativos não entram na segmentação")
	}
	if got := data.Revenue["Não Informado"]; got != 80 {
		t.Errorf("receita do sentinela = %v, esperado 80", got)
	}
}
