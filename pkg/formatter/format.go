// Package formatter aplica e remove as máscaras de entrada usadas nos formulários
// (telefone, CPF, CNPJ, CEP, moeda, porcentagem, cartão e data).
//
// Todas as funções são puras: aceitam qualquer string (parcialmente formatada ou com
// caracteres soltos) e nunca retornam erro. Dígitos excedentes são descartados em silêncio,
// o que permite chamá-las a cada tecla digitada.
package formatter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifica o tipo de campo formatado.
type Kind string

const (
	KindPhone      Kind = "phone"
	KindCPF        Kind = "cpf"
	KindCNPJ       Kind = "cnpj"
	KindCPFCNPJ    Kind = "cpfcnpj"
	KindCEP        Kind = "cep"
	KindCurrency   Kind = "currency"
	KindNumber     Kind = "number"
	KindPercentage Kind = "percentage"
	KindCreditCard Kind = "creditcard"
	KindDate       Kind = "date"
)

// Quantidade máxima de dígitos por tipo de campo.
const (
	MaxPhoneDigits      = 11
	MaxCPFDigits        = 11
	MaxCNPJDigits       = 14
	MaxCEPDigits        = 8
	MaxCreditCardDigits = 16
	MaxDateDigits       = 8
)

// currencyPrefix é o símbolo do real seguido de espaço não separável, como no Intl pt-BR.
const currencyPrefix = "R$\u00a0"

// Kinds lista os tipos suportados, na ordem em que aparecem na documentação da API.
func Kinds() []Kind {
	return []Kind{
		KindPhone, KindCPF, KindCNPJ, KindCPFCNPJ, KindCEP,
		KindCurrency, KindNumber, KindPercentage, KindCreditCard, KindDate,
	}
}

// Valid informa se k é um tipo conhecido.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// MaxDigits devolve o limite de dígitos de k, ou 0 quando não há limite.
func (k Kind) MaxDigits() int {
	switch k {
	case KindPhone:
		return MaxPhoneDigits
	case KindCPF:
		return MaxCPFDigits
	case KindCNPJ, KindCPFCNPJ:
		return MaxCNPJDigits
	case KindCEP:
		return MaxCEPDigits
	case KindCreditCard:
		return MaxCreditCardDigits
	case KindDate:
		return MaxDateDigits
	default:
		return 0
	}
}

// Apply aplica a máscara correspondente a kind. Tipos desconhecidos devolvem value sem alteração.
func Apply(value string, kind Kind) string {
	switch kind {
	case KindPhone:
		return FormatPhone(value)
	case KindCPF:
		return FormatCPF(value)
	case KindCNPJ:
		return FormatCNPJ(value)
	case KindCPFCNPJ:
		return FormatCPFCNPJ(value)
	case KindCEP:
		return FormatCEP(value)
	case KindCurrency:
		return FormatCurrencyInput(value)
	case KindNumber:
		return FormatNumber(value)
	case KindPercentage:
		return FormatPercentage(value)
	case KindCreditCard:
		return FormatCreditCard(value)
	case KindDate:
		return FormatDate(value)
	default:
		return value
	}
}

// FormatPhone formata telefone brasileiro: (XX) XXXX-XXXX ou (XX) XXXXX-XXXX.
// Resultados parciais são progressivos conforme a quantidade de dígitos.
func FormatPhone(value string) string {
	n := digitsOnly(value)
	switch {
	case len(n) == 0:
		return ""
	case len(n) <= 2:
		return "(" + n
	case len(n) <= 6:
		return "(" + n[:2] + ") " + n[2:]
	case len(n) <= 10:
		return "(" + n[:2] + ") " + n[2:6] + "-" + n[6:]
	default:
		// celular com DDD
		return "(" + n[:2] + ") " + n[2:7] + "-" + n[7:MaxPhoneDigits]
	}
}

// FormatCPF formata CPF: XXX.XXX.XXX-XX.
func FormatCPF(value string) string {
	n := truncate(digitsOnly(value), MaxCPFDigits)
	switch {
	case len(n) <= 3:
		return n
	case len(n) <= 6:
		return n[:3] + "." + n[3:]
	case len(n) <= 9:
		return n[:3] + "." + n[3:6] + "." + n[6:]
	default:
		return n[:3] + "." + n[3:6] + "." + n[6:9] + "-" + n[9:]
	}
}

// FormatCNPJ formata CNPJ: XX.XXX.XXX/XXXX-XX.
func FormatCNPJ(value string) string {
	n := truncate(digitsOnly(value), MaxCNPJDigits)
	switch {
	case len(n) <= 2:
		return n
	case len(n) <= 5:
		return n[:2] + "." + n[2:]
	case len(n) <= 8:
		return n[:2] + "." + n[2:5] + "." + n[5:]
	case len(n) <= 12:
		return n[:2] + "." + n[2:5] + "." + n[5:8] + "/" + n[8:]
	default:
		return n[:2] + "." + n[2:5] + "." + n[5:8] + "/" + n[8:12] + "-" + n[12:]
	}
}

// FormatCPFCNPJ escolhe a máscara pelo total de dígitos: até 11 é CPF, acima disso CNPJ.
func FormatCPFCNPJ(value string) string {
	if len(digitsOnly(value)) <= MaxCPFDigits {
		return FormatCPF(value)
	}
	return FormatCNPJ(value)
}

// FormatCEP formata CEP: XXXXX-XXX.
func FormatCEP(value string) string {
	n := truncate(digitsOnly(value), MaxCEPDigits)
	if len(n) <= 5 {
		return n
	}
	return n[:5] + "-" + n[5:]
}

// FormatCurrencyInput interpreta todos os dígitos como centavos e devolve o valor em reais
// no padrão pt-BR (R$ 1.234,56). Entrada sem dígitos devolve "", nunca zero.
func FormatCurrencyInput(value string) string {
	n := digitsOnly(value)
	if n == "" {
		return ""
	}
	cents, err := decimal.NewFromString(n)
	if err != nil {
		return ""
	}
	// sem passar por float64: o valor precisa sobreviver inteiro a qualquer quantidade de dígitos
	intPart, centPart, _ := strings.Cut(cents.Shift(-2).StringFixed(2), ".")
	return currencyPrefix + groupThousands(intPart) + "," + centPart
}

// groupThousands insere "." a cada três dígitos, da direita para a esquerda.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatNumber mantém apenas os dígitos.
func FormatNumber(value string) string {
	return digitsOnly(value)
}

// FormatPercentage considera os dois últimos dígitos como casas decimais: "1234" -> "12,34%".
// Com até dois dígitos, completa com zeros à esquerda: "5" -> "0,05%".
func FormatPercentage(value string) string {
	n := digitsOnly(value)
	if n == "" {
		return ""
	}
	if len(n) > 2 {
		return n[:len(n)-2] + "," + n[len(n)-2:] + "%"
	}
	return "0," + leftPad(n, 2, '0') + "%"
}

// FormatCreditCard formata cartão em grupos de quatro dígitos: XXXX XXXX XXXX XXXX.
func FormatCreditCard(value string) string {
	n := truncate(digitsOnly(value), MaxCreditCardDigits)
	if n == "" {
		return ""
	}
	groups := make([]string, 0, 4)
	for i := 0; i < len(n); i += 4 {
		end := i + 4
		if end > len(n) {
			end = len(n)
		}
		groups = append(groups, n[i:end])
	}
	return strings.Join(groups, " ")
}

// FormatDate formata data: DD/MM/AAAA.
func FormatDate(value string) string {
	n := truncate(digitsOnly(value), MaxDateDigits)
	switch {
	case len(n) <= 2:
		return n
	case len(n) <= 4:
		return n[:2] + "/" + n[2:]
	default:
		return n[:2] + "/" + n[2:4] + "/" + n[4:]
	}
}

// digitsOnly descarta tudo que não for dígito ASCII.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

func leftPad(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}
