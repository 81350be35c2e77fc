package perf

// FilterList devolve os itens aceitos por match para o termo informado.
// Sem termo ou sem função de filtro, a lista original é devolvida sem cópia.
func FilterList[T any](items []T, term string, match func(item T, term string) bool) []T {
	if term == "" || match == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it, term) {
			out = append(out, it)
		}
	}
	return out
}
