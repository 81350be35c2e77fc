package formatter

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber captura o maior prefixo numérico válido, como um parse de float tolerante.
var leadingNumber = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)`)

// Remove desfaz a máscara de kind. Moeda e porcentagem são devolvidas como número decimal
// em texto ("123.45"). Tipos desconhecidos devolvem value sem alteração.
func Remove(value string, kind Kind) string {
	switch kind {
	case KindPhone:
		return UnformatPhone(value)
	case KindCPF:
		return UnformatCPF(value)
	case KindCNPJ:
		return UnformatCNPJ(value)
	case KindCPFCNPJ:
		return digitsOnly(value)
	case KindCEP:
		return UnformatCEP(value)
	case KindCurrency:
		return UnformatCurrency(value).String()
	case KindNumber:
		return FormatNumber(value)
	case KindPercentage:
		return UnformatPercentage(value).String()
	case KindCreditCard:
		return UnformatCreditCard(value)
	case KindDate:
		return UnformatDate(value)
	default:
		return value
	}
}

// Digits devolve apenas os dígitos de value, sem limite de tamanho.
func Digits(value string) string {
	return digitsOnly(value)
}

// UnformatPhone devolve apenas os dígitos do telefone.
func UnformatPhone(value string) string {
	return digitsOnly(value)
}

// UnformatCPF devolve os dígitos do CPF, limitados a 11.
func UnformatCPF(value string) string {
	return truncate(digitsOnly(value), MaxCPFDigits)
}

// UnformatCNPJ devolve os dígitos do CNPJ, limitados a 14.
func UnformatCNPJ(value string) string {
	return truncate(digitsOnly(value), MaxCNPJDigits)
}

// UnformatCEP devolve os dígitos do CEP, limitados a 8.
func UnformatCEP(value string) string {
	return truncate(digitsOnly(value), MaxCEPDigits)
}

// UnformatCreditCard devolve os dígitos do cartão, limitados a 16.
func UnformatCreditCard(value string) string {
	return truncate(digitsOnly(value), MaxCreditCardDigits)
}

// UnformatDate devolve os dígitos da data, limitados a 8.
func UnformatDate(value string) string {
	return truncate(digitsOnly(value), MaxDateDigits)
}

// UnformatCurrency converte "R$ 1.234,56" em 1234.56. Entrada sem número devolve zero.
func UnformatCurrency(value string) decimal.Decimal {
	return parseLocaleNumber(value)
}

// UnformatPercentage converte "12,34%" em 12.34. Entrada sem número devolve zero.
func UnformatPercentage(value string) decimal.Decimal {
	return parseLocaleNumber(value)
}

// parseLocaleNumber mantém dígitos, vírgula, ponto e sinal. Quando ponto e vírgula aparecem
// juntos, o ponto é separador de milhar pt-BR e é descartado; a vírgula vira ponto decimal.
func parseLocaleNumber(value string) decimal.Decimal {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c >= '0' && c <= '9') || c == ',' || c == '.' || c == '-' {
			b.WriteByte(c)
		}
	}
	clean := b.String()
	if strings.Contains(clean, ",") && strings.Contains(clean, ".") {
		clean = strings.ReplaceAll(clean, ".", "")
	}
	clean = strings.Replace(clean, ",", ".", 1)

	m := leadingNumber.FindString(clean)
	if m == "" || m == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}
