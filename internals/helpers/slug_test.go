package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Academia Corpo em Movimento", "academia-corpo-em-movimento"},
		{"  Fit & Forma  ", "fit-forma"},
		{"CT---Irmãos!!", "ct-irmãos"},
		{"123 Gym", "123-gym"},
		{"___", ""},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, esperado %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{150, "R$ 150,00"},
		{1234.5, "R$ 1.234,50"},
		{0, "R$ 0,00"},
	}
	for _, tt := range tests {
		if got := FormatBRL(tt.in); got != tt.want {
			t.Errorf("FormatBRL(%v) = %q, esperado %q", tt.in, got, tt.want)
		}
	}
}
