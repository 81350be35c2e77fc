package formatter_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/webytehub/ploutosledger-api/pkg/formatter"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máscaras numéricas
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"119876", "(11) 9876"},
		{"1198765", "(11) 9876-5"},
		{"1133334444", "(11) 3333-4444"},
		{"11987654321", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"1198765432199", "(11) 98765-4321"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatter.FormatPhone(tc.in), "entrada %q", tc.in)
	}
}

func TestFormatCPF(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"123":             "123",
		"1234":            "123.4",
		"1234567":         "123.456.7",
		"12345678901":     "123.456.789-01",
		"123456789012345": "123.456.789-01",
		"123.456.789-01":  "123.456.789-01",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatter.FormatCPF(in), "entrada %q", in)
	}
}

func TestFormatCNPJ(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"11":                 "11",
		"112":                "11.2",
		"112223":             "11.222.3",
		"112223330001":       "11.222.333/0001",
		"11222333000181":     "11.222.333/0001-81",
		"11222333000181999":  "11.222.333/0001-81",
		"11.222.333/0001-81": "11.222.333/0001-81",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatter.FormatCNPJ(in), "entrada %q", in)
	}
}

func TestFormatCPFCNPJ_DespachaPeloTamanho(t *testing.T) {
	assert.Equal(t, "123.456.789-01", formatter.FormatCPFCNPJ("12345678901"))
	assert.Equal(t, "11.222.333/0001-81", formatter.FormatCPFCNPJ("11222333000181"))
	assert.Equal(t, "12.345.678/9012", formatter.FormatCPFCNPJ("123456789012"))
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "01310-100", formatter.FormatCEP("01310100"))
	assert.Equal(t, "01310", formatter.FormatCEP("01310"))
	assert.Equal(t, "01310-1", formatter.FormatCEP("013101"))
	assert.Equal(t, "01310-100", formatter.FormatCEP("01310-1009999"))
	assert.Equal(t, "", formatter.FormatCEP("-"))
}

func TestFormatCreditCard(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", formatter.FormatCreditCard("4111111111111111"))
	assert.Equal(t, "4111 11", formatter.FormatCreditCard("411111"))
	assert.Equal(t, "4111 1111 1111 1111", formatter.FormatCreditCard("4111-1111-1111-1111-999"))
	assert.Equal(t, "", formatter.FormatCreditCard(""))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "25", formatter.FormatDate("25"))
	assert.Equal(t, "25/12", formatter.FormatDate("2512"))
	assert.Equal(t, "25/12/2", formatter.FormatDate("25122"))
	assert.Equal(t, "25/12/2024", formatter.FormatDate("25122024"))
	assert.Equal(t, "25/12/2024", formatter.FormatDate("25/12/20249"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Moeda e porcentagem
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatCurrencyInput(t *testing.T) {
	assert.Equal(t, "", formatter.FormatCurrencyInput(""))
	assert.Equal(t, "", formatter.FormatCurrencyInput("R$"))
	assert.Equal(t, "R$\u00a0123,45", formatter.FormatCurrencyInput("12345"))
	assert.Equal(t, "R$\u00a00,05", formatter.FormatCurrencyInput("5"))
	assert.Equal(t, "R$\u00a012.345,67", formatter.FormatCurrencyInput("1234567"))
}

func TestUnformatCurrency_RoundTrip(t *testing.T) {
	got := formatter.UnformatCurrency(formatter.FormatCurrencyInput("12345"))
	assert.True(t, decimal.RequireFromString("123.45").Equal(got), "obtido %s", got)

	got = formatter.UnformatCurrency(formatter.FormatCurrencyInput("1234567"))
	assert.True(t, decimal.RequireFromString("12345.67").Equal(got), "obtido %s", got)
}

func TestFormatCurrencyInput_ValoresLongosSemPerda(t *testing.T) {
	assert.Equal(t, "R$\u00a090.071.992.547.409,93", formatter.FormatCurrencyInput("9007199254740993"))
	assert.Equal(t, "R$\u00a0123.456,00", formatter.FormatCurrencyInput("12345600"))
	assert.Equal(t, "R$\u00a00,00", formatter.FormatCurrencyInput("000"))

	for in, want := range map[string]string{
		"9007199254740993":        "90071992547409.93",
		"12345678901234567890123": "123456789012345678901.23",
	} {
		got := formatter.UnformatCurrency(formatter.FormatCurrencyInput(in))
		assert.True(t, decimal.RequireFromString(want).Equal(got), "entrada %s, obtido %s", in, got)
	}
}

func TestUnformatCurrency_EntradaInvalidaDevolveZero(t *testing.T) {
	for _, in := range []string{"", "R$", "abc", "-", ",", "--"} {
		assert.True(t, formatter.UnformatCurrency(in).IsZero(), "entrada %q", in)
	}
}

func TestUnformatCurrency_PrefixoNumerico(t *testing.T) {
	assert.Equal(t, "12.5", formatter.UnformatCurrency("12,5").String())
	assert.Equal(t, "-3.2", formatter.UnformatCurrency("-3,20").String())
	assert.Equal(t, "1.5", formatter.UnformatCurrency("1.5.7").String())
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12,34%", formatter.FormatPercentage("1234"))
	assert.Equal(t, "0,05%", formatter.FormatPercentage("5"))
	assert.Equal(t, "0,50%", formatter.FormatPercentage("50"))
	assert.Equal(t, "1,00%", formatter.FormatPercentage("100"))
	assert.Equal(t, "", formatter.FormatPercentage("%"))
}

func TestUnformatPercentage(t *testing.T) {
	assert.Equal(t, "12.34", formatter.UnformatPercentage("12,34%").String())
	assert.Equal(t, "0.05", formatter.UnformatPercentage("0,05%").String())
	assert.True(t, formatter.UnformatPercentage("%").IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_TipoDesconhecidoDevolveEntrada(t *testing.T) {
	assert.Equal(t, "abc-123", formatter.Apply("abc-123", formatter.Kind("rg")))
	assert.Equal(t, "abc-123", formatter.Remove("abc-123", formatter.Kind("rg")))
}

func TestApply_DespachaParaCadaTipo(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", formatter.Apply("11987654321", formatter.KindPhone))
	assert.Equal(t, "123.456.789-01", formatter.Apply("12345678901", formatter.KindCPF))
	assert.Equal(t, "11.222.333/0001-81", formatter.Apply("11222333000181", formatter.KindCNPJ))
	assert.Equal(t, "01310-100", formatter.Apply("01310100", formatter.KindCEP))
	assert.Equal(t, "123", formatter.Apply("1a2b3", formatter.KindNumber))
	assert.Equal(t, "12,34%", formatter.Apply("1234", formatter.KindPercentage))
	assert.Equal(t, "R$\u00a0123,45", formatter.Apply("12345", formatter.KindCurrency))
	assert.Equal(t, "25/12/2024", formatter.Apply("25122024", formatter.KindDate))
}

func TestRemove_MoedaEPorcentagem(t *testing.T) {
	assert.Equal(t, "123.45", formatter.Remove("R$\u00a0123,45", formatter.KindCurrency))
	assert.Equal(t, "12.34", formatter.Remove("12,34%", formatter.KindPercentage))
	assert.Equal(t, "11222333000181", formatter.Remove("11.222.333/0001-81", formatter.KindCPFCNPJ))
}

// Para toda sequência de dígitos d: Remove(Apply(d, k), k) == truncate(d, max(k)).
func TestRoundTrip_MascarasNumericas(t *testing.T) {
	kinds := []formatter.Kind{
		formatter.KindPhone, formatter.KindCPF, formatter.KindCNPJ, formatter.KindCPFCNPJ,
		formatter.KindCEP, formatter.KindCreditCard, formatter.KindDate, formatter.KindNumber,
	}
	source := strings.Repeat("90817263544536271809", 2)

	for _, kind := range kinds {
		for n := 0; n <= 20; n++ {
			d := source[n : 2*n]
			want := d
			if max := kind.MaxDigits(); max > 0 && len(want) > max {
				want = want[:max]
			}
			got := formatter.Remove(formatter.Apply(d, kind), kind)
			assert.Equal(t, want, got, "tipo %s, dígitos %q", kind, d)
		}
	}
}

func TestKind_Valid(t *testing.T) {
	for _, k := range formatter.Kinds() {
		assert.True(t, k.Valid(), string(k))
	}
	assert.False(t, formatter.Kind("rg").Valid())
}
