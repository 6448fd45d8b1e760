// internals/features/academia/dashboard/service/segmentation.go
package service

import (
	"fmt"
	"strings"

	studentDTO "modulus_backend/internals/features/academia/students/dto"
	studentModel "modulus_backend/internals/features/academia/students/model"
)

// GenderSplit alimenta os gráficos de pizza/lista hierárquica, que
// renderizam exatamente duas séries.
type GenderSplit struct {
	Masc  int `json:"masc"`
	Fem   int `json:"fem"`
	Total int `json:"total"`
}

type ModalitySegment struct {
	Total       int                    `json:"total"`
	Frequencies map[string]GenderSplit `json:"frequencies"`
}

type SegmentationData struct {
	// contagem de alunos por modalidade × frequência semanal × gênero
	Modalities map[string]ModalitySegment `json:"modalities"`
	// receita mensal estimada por modalidade (mensalidade rateada entre
	// as modalidades do aluno)
	Revenue map[string]float64 `json:"revenue"`
}

// isMasc classifica pelo prefixo "m"/"M" do campo livre de gênero;
// qualquer outro valor cai no bucket feminino. O contrato dos gráficos é
// binário — valores fora disso não têm série própria.
func isMasc(gender string) bool {
	g := strings.TrimSpace(gender)
	return g != "" && (g[0] == 'm' || g[0] == 'M')
}

// ComputeSegmentation agrega os alunos ativos por modalidade. Alunos com
// mais de uma modalidade contam uma vez em cada; a mensalidade é rateada
// em partes iguais. Quem não informou modalidade entra no rótulo
// sentinela.
func ComputeSegmentation(students []studentModel.StudentModel) SegmentationData {
	out := SegmentationData{
		Modalities: map[string]ModalitySegment{},
		Revenue:    map[string]float64{},
	}

	for i := range students {
		s := &students[i]
		if s.StudentStatus != studentModel.StatusActive {
			continue
		}

		tags := studentDTO.ParseModalityTags(s.StudentModalidades).Tags
		freq := fmt.Sprintf("%dx", s.StudentClassesPerWeek)
		share := s.StudentMensalidade / float64(len(tags))
		masc := isMasc(s.StudentGender)

		for _, tag := range tags {
			seg, ok := out.Modalities[tag]
			if !ok {
				seg = ModalitySegment{Frequencies: map[string]GenderSplit{}}
			}
			seg.Total++

			split := seg.Frequencies[freq]
			if masc {
				split.Masc++
			} else {
				split.Fem++
			}
			split.Total++
			seg.Frequencies[freq] = split

			out.Modalities[tag] = seg
			out.Revenue[tag] += share
		}
	}

	return out
}
