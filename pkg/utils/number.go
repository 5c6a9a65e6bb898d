package utils

import (
	"strconv"
	"strings"
)

// ParseMoney converte valores numéricos vindos de APIs externas que podem
// conter símbolo de moeda e separador de milhar (ex: "R$ 1.234,56", "$1,234.56").
// Retorna nil quando o valor está ausente ou não é interpretável — a distinção
// entre "ausente" e "zero" importa para as regras de análise.
func ParseMoney(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	// Remove tudo que não for dígito, sinal ou separador
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "-" {
		return nil
	}

	// O separador que aparece por último é o decimal
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	if lastComma > lastDot {
		// Formato brasileiro: "." de milhar e "," decimal
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else {
		// Formato americano: "," de milhar e "." decimal
		s = strings.ReplaceAll(s, ",", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &value
}

// Moedas sem casas decimais segundo a ISO 4217. As demais usam duas casas.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {},
	"KRW": {}, "MGA": {}, "PYG": {}, "RWF": {}, "UGX": {}, "VND": {},
	"VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// CurrencyExponent retorna o número de casas decimais da unidade mínima da moeda.
func CurrencyExponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(currency)]; ok {
		return 0
	}
	return 2
}
