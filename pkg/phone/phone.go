package phone

import (
	"fmt"
	"strings"
)

// Digits extrai apenas os dígitos de um telefone informado em formato livre.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatE164 normaliza um telefone em formato livre para E.164.
// A heurística assume números brasileiros quando o código de país está
// ausente. Retorna o número normalizado e se o formato foi reconhecido;
// números fora dos padrões conhecidos ganham apenas o prefixo "+" e são
// marcados como não confiáveis.
func FormatE164(raw string) (string, bool, error) {
	digits := Digits(raw)
	reliable := true

	var e164 string
	switch {
	case strings.HasPrefix(raw, "+"):
		// Já veio com "+", assume E.164 ou próximo disso.
		e164 = raw
	case strings.HasPrefix(digits, "55") && (len(digits) == 12 || len(digits) == 13):
		// Número BR com código de país, ex: 5511999999999.
		e164 = "+" + digits
	case len(digits) == 10 || len(digits) == 11:
		// DDD + número, ex: 11999999999.
		e164 = "+55" + digits
	default:
		e164 = "+" + digits
		reliable = false
	}

	if !strings.HasPrefix(e164, "+") || len(e164) < 11 {
		return "", reliable, fmt.Errorf("telefone %q não pôde ser normalizado para E.164 (resultado %q)", raw, e164)
	}

	return e164, reliable, nil
}
