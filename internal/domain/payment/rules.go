// Package payment contém as regras de exibição de formas de pagamento por ramo de atuação.
package payment

import (
	"slices"

	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

// Formas de pagamento ocultas no ramo alimentício.
var hiddenInFood = []string{
	"cartaoLink",
	"boletos",
	"cheques",
	"taxas",
	"transportadora",
	"comissaoPuxador",
	"correios",
}

// IsFoodSegment informa se a categoria é do ramo alimentício.
func IsFoodSegment(category string) bool {
	return category == entity.CategoryAlimentacaoBebidas
}

// ShouldShowPaymentMethod informa se method deve ser exibido para a categoria.
// Sem categoria, tudo é exibido.
func ShouldShowPaymentMethod(method, category string) bool {
	if category == "" {
		return true
	}
	if IsFoodSegment(category) {
		return !slices.Contains(hiddenInFood, method)
	}
	return true
}

// ShouldShowVRVA VR/VA só aparecem no ramo alimentício.
func ShouldShowVRVA(category string) bool {
	return IsFoodSegment(category)
}

// HiddenPaymentMethods devolve uma cópia das formas ocultas para a categoria.
func HiddenPaymentMethods(category string) []string {
	if IsFoodSegment(category) {
		return slices.Clone(hiddenInFood)
	}
	return []string{}
}

// VisibleMethods filtra methods mantendo a ordem original.
func VisibleMethods(methods []string, category string) []string {
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		if ShouldShowPaymentMethod(m, category) {
			out = append(out, m)
		}
	}
	return out
}
