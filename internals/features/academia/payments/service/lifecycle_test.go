package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceDueDate(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want time.Time
	}{
		{
			name: "meio do mês",
			due:  date(2025, time.March, 10),
			want: date(2025, time.April, 9),
		},
		{
			name: "estouro de mês segue o calendário",
			due:  date(2025, time.January, 31),
			want: date(2025, time.March, 2),
		},
		{
			name: "fevereiro em ano bissexto",
			due:  date(2024, time.January, 31),
			want: date(2024, time.March, 1),
		},
		{
			name: "virada de ano",
			due:  date(2025, time.December, 15),
			want: date(2026, time.January, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvanceDueDate(tt.due)
			if !got.Equal(tt.want) {
				t.Errorf("AdvanceDueDate(%v) = %v, esperado %v", tt.due, got, tt.want)
			}
		})
	}
}

func TestAdvanceDueDateAlwaysThirtyDays(t *testing.T) {
	// independente do mês, o avanço é sempre de 30 dias corridos
	start := date(2025, time.January, 1)
	for i := 0; i < 365; i++ {
		due := start.AddDate(0, 0, i)
		got := AdvanceDueDate(due)
		if diff := got.Sub(due).Hours() / 24; diff != 30 {
			t.Fatalf("AdvanceDueDate(%v): avanço de %.0f dias, esperado 30", due, diff)
		}
	}
}
