package formatter

import (
	"errors"
	"fmt"
)

// ErrInvalidCheckDigit indica dígito verificador de CPF/CNPJ incorreto.
var ErrInvalidCheckDigit = errors.New("dígito verificador inválido")

// pesos do módulo 11 da Receita Federal para os dois dígitos verificadores do CNPJ.
var (
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCPF valida um CPF (com ou sem máscara) pelo algoritmo módulo 11.
// Sequências de um único dígito repetido ("111.111.111-11") são rejeitadas.
func ValidateCPF(value string) error {
	d := digitsOnly(value)
	if len(d) != MaxCPFDigits {
		return fmt.Errorf("formatter: CPF deve ter %d dígitos, encontrados %d", MaxCPFDigits, len(d))
	}
	if repeated(d) {
		return fmt.Errorf("formatter: CPF %s: %w", d, ErrInvalidCheckDigit)
	}
	for pos := 9; pos <= 10; pos++ {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(d[i]-'0') * (pos + 1 - i)
		}
		expected := (sum * 10) % 11
		if expected == 10 {
			expected = 0
		}
		if int(d[pos]-'0') != expected {
			return fmt.Errorf("formatter: CPF %s: %w", d, ErrInvalidCheckDigit)
		}
	}
	return nil
}

// ValidateCNPJ valida um CNPJ (com ou sem máscara) pelo algoritmo módulo 11.
func ValidateCNPJ(value string) error {
	d := digitsOnly(value)
	if len(d) != MaxCNPJDigits {
		return fmt.Errorf("formatter: CNPJ deve ter %d dígitos, encontrados %d", MaxCNPJDigits, len(d))
	}
	if repeated(d) {
		return fmt.Errorf("formatter: CNPJ %s: %w", d, ErrInvalidCheckDigit)
	}
	if cnpjDigit(d, cnpjWeights1[:]) != d[12] || cnpjDigit(d, cnpjWeights2[:]) != d[13] {
		return fmt.Errorf("formatter: CNPJ %s: %w", d, ErrInvalidCheckDigit)
	}
	return nil
}

// ValidateDocument valida CPF ou CNPJ conforme a quantidade de dígitos e devolve o tipo detectado.
func ValidateDocument(value string) (Kind, error) {
	switch len(digitsOnly(value)) {
	case MaxCPFDigits:
		return KindCPF, ValidateCPF(value)
	case MaxCNPJDigits:
		return KindCNPJ, ValidateCNPJ(value)
	default:
		return "", fmt.Errorf("formatter: documento deve ter 11 (CPF) ou 14 (CNPJ) dígitos")
	}
}

func cnpjDigit(d string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(d[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

func repeated(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
