package helper

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor em reais para mensagens ao usuário,
// ex.: 1234.5 → "R$ 1.234,50".
func FormatBRL(v float64) string {
	return brPrinter.Sprintf("R$ %.2f", v)
}
