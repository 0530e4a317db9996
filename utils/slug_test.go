package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Palmeiras vence o Clássico!", "palmeiras-vence-o-classico"},
		{"Flamengo 3 x 1 Vasco", "flamengo-3-x-1-vasco"},
		{"  São Paulo anuncia reforço  ", "sao-paulo-anuncia-reforco"},
		{"Atenção: João é o novo técnico", "atencao-joao-e-o-novo-tecnico"},
		{"---", ""},
		{"", ""},
		{"UPPER Case Title", "upper-case-title"},
		{"múltiplos    espaços", "multiplos-espacos"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, expected %q", tt.title, got, tt.expected)
		}
	}
}
