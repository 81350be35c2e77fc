package segment

import (
	"slices"

	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

// View visão somente leitura derivada do vínculo atual. Sem vínculo, todas as listas são vazias.
type View struct {
	companySegment *entity.CompanyBusinessSegment
}

// NewView constrói a visão; cs pode ser nil.
func NewView(cs *entity.CompanyBusinessSegment) *View {
	return &View{companySegment: cs}
}

// CompanySegment vínculo de origem (pode ser nil).
func (v *View) CompanySegment() *entity.CompanyBusinessSegment { return v.companySegment }

// Config configuração ativa ou nil.
func (v *View) Config() *entity.BusinessSegmentConfig {
	if v.companySegment == nil {
		return nil
	}
	return &v.companySegment.Config
}

// Category categoria do segmento vinculado ou "".
func (v *View) Category() string { return v.companySegment.Category() }

func (v *View) Nomenclaturas() map[string]string {
	if c := v.Config(); c != nil && c.Nomenclaturas != nil {
		return c.Nomenclaturas
	}
	return map[string]string{}
}

// GetTerm devolve o termo personalizado pelo segmento ou o próprio termo.
func (v *View) GetTerm(term string) string {
	if t := v.Nomenclaturas()[term]; t != "" {
		return t
	}
	return term
}

func (v *View) CategoriasEntradas() []string {
	return v.list(func(c *entity.BusinessSegmentConfig) []string { return c.CategoriasFinanceiras.Entradas })
}

func (v *View) CategoriasSaidas() []string {
	return v.list(func(c *entity.BusinessSegmentConfig) []string { return c.CategoriasFinanceiras.Saidas })
}

func (v *View) TiposPagamento() []string {
	return v.list(func(c *entity.BusinessSegmentConfig) []string { return c.TiposPagamento })
}

func (v *View) CamposObrigatorios() []string {
	return v.list(func(c *entity.BusinessSegmentConfig) []string { return c.CamposObrigatorios })
}

func (v *View) Validacoes() []string {
	return v.list(func(c *entity.BusinessSegmentConfig) []string { return c.Validacoes })
}

func (v *View) Relatorios() []string {
	return v.list(func(c *entity.BusinessSegmentConfig) []string { return c.Relatorios })
}

func (v *View) Funcionalidades() []entity.Funcionalidade {
	if c := v.Config(); c != nil && c.Funcionalidades != nil {
		return c.Funcionalidades
	}
	return []entity.Funcionalidade{}
}

// HasFuncionalidade é verdadeiro se code estiver configurada e ativa.
// vr_va também é habilitada para qualquer segmento de alimentação e bebidas.
func (v *View) HasFuncionalidade(code string) bool {
	if slices.ContainsFunc(v.Funcionalidades(), func(f entity.Funcionalidade) bool {
		return f.Codigo == code && f.Ativa
	}) {
		return true
	}
	return code == entity.FeatureVRVA && v.Category() == entity.CategoryAlimentacaoBebidas
}

func (v *View) list(get func(*entity.BusinessSegmentConfig) []string) []string {
	if c := v.Config(); c != nil {
		if l := get(c); l != nil {
			return l
		}
	}
	return []string{}
}
