package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{
			name:     "Valor ausente retorna nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "Apenas espaços retorna nil",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "Valor não numérico retorna nil",
			input:    "abc",
			expected: nil,
		},
		{
			name:     "Zero é um valor válido, não ausência",
			input:    "0",
			expected: floatPtr(0),
		},
		{
			name:     "Número simples",
			input:    "1234.56",
			expected: floatPtr(1234.56),
		},
		{
			name:     "Formato americano com separador de milhar",
			input:    "$1,234.56",
			expected: floatPtr(1234.56),
		},
		{
			name:     "Formato brasileiro com símbolo de moeda",
			input:    "R$ 1.234,56",
			expected: floatPtr(1234.56),
		},
		{
			name:     "Valor negativo",
			input:    "-12.5",
			expected: floatPtr(-12.5),
		},
		{
			name:     "Inteiro vindo da API como string",
			input:    "15000",
			expected: floatPtr(15000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseMoney(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 0.0001)
		})
	}
}

func TestCurrencyExponent(t *testing.T) {
	assert.Equal(t, int32(2), CurrencyExponent("BRL"))
	assert.Equal(t, int32(2), CurrencyExponent("USD"))
	assert.Equal(t, int32(0), CurrencyExponent("JPY"))
	assert.Equal(t, int32(0), CurrencyExponent("clp"))
	assert.Equal(t, int32(2), CurrencyExponent(""))
}

func floatPtr(f float64) *float64 {
	return &f
}
