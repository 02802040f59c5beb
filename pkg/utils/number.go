package utils

import (
	"math"
	"strconv"
	"strings"
)

// Ratio devolve numerador/denominador ou nil quando o denominador é zero.
// nil representa métrica indefinida, nunca zero nem infinito
func Ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}

	r := numerator / denominator
	return &r
}

// CoerceNumber converte um valor textual de uma fonte para número.
// Valores vazios ou não numéricos viram 0 em vez de falhar a linha;
// negativos são truncados em 0 porque todas as métricas do pipeline
// são não negativas
func CoerceNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Tolerar símbolo monetário e separador de milhar comuns em exports
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	if value < 0 {
		return 0
	}

	return value
}
