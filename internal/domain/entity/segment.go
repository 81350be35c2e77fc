package entity

import (
	"maps"
	"slices"
	"time"
)

// Categorias de ramo de atuação.
const (
	CategoryComercio           = "comercio"
	CategoryAlimentacaoBebidas = "alimentacao_bebidas"
	CategoryServicos           = "servicos"
	CategoryIndustria          = "industria"
)

// GenericRetailCode é o segmento adotado quando a empresa ainda não escolheu o seu.
const GenericRetailCode = "COM_VAREJISTA_GENERICO"

// FeatureVRVA habilita vale-refeição/vale-alimentação.
const FeatureVRVA = "vr_va"

// BusinessSegment define um ramo de atuação do catálogo.
type BusinessSegment struct {
	ID        string                `json:"id" yaml:"id"`
	Codigo    string                `json:"codigo" yaml:"codigo"`
	Nome      string                `json:"nome" yaml:"nome"`
	Descricao string                `json:"descricao,omitempty" yaml:"descricao"`
	Categoria string                `json:"categoria" yaml:"categoria"` // ver constantes Category*
	Config    BusinessSegmentConfig `json:"config" yaml:"config"`
}

// BusinessSegmentConfig personaliza termos, categorias financeiras e funcionalidades do segmento.
type BusinessSegmentConfig struct {
	Nomenclaturas         map[string]string     `json:"nomenclaturas" yaml:"nomenclaturas"`
	CategoriasFinanceiras CategoriasFinanceiras `json:"categoriasFinanceiras" yaml:"categoriasFinanceiras"`
	TiposPagamento        []string              `json:"tiposPagamento" yaml:"tiposPagamento"`
	CamposObrigatorios    []string              `json:"camposObrigatorios" yaml:"camposObrigatorios"`
	Validacoes            []string              `json:"validacoes" yaml:"validacoes"`
	Relatorios            []string              `json:"relatorios" yaml:"relatorios"`
	Funcionalidades       []Funcionalidade      `json:"funcionalidades" yaml:"funcionalidades"`
}

// CategoriasFinanceiras categorias de entrada e saída do fluxo de caixa.
type CategoriasFinanceiras struct {
	Entradas []string `json:"entradas" yaml:"entradas"`
	Saidas   []string `json:"saidas" yaml:"saidas"`
}

// Funcionalidade recurso opcional que o segmento pode ativar.
type Funcionalidade struct {
	Codigo string `json:"codigo" yaml:"codigo"`
	Nome   string `json:"nome" yaml:"nome"`
	Ativa  bool   `json:"ativa" yaml:"ativa"`
}

// CompanyBusinessSegment vínculo persistido entre uma empresa e o seu segmento.
type CompanyBusinessSegment struct {
	ID        string                `json:"id"`
	CompanyID string                `json:"companyId"`
	SegmentID string                `json:"segmentId"`
	Segment   *BusinessSegment      `json:"segment,omitempty"`
	Config    BusinessSegmentConfig `json:"config"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// Category devolve a categoria do segmento vinculado ou "" se não houver.
func (c *CompanyBusinessSegment) Category() string {
	if c == nil || c.Segment == nil {
		return ""
	}
	return c.Segment.Categoria
}

// Clone devolve uma cópia profunda do segmento.
func (s *BusinessSegment) Clone() *BusinessSegment {
	if s == nil {
		return nil
	}
	out := *s
	out.Config = s.Config.Clone()
	return &out
}

// Clone devolve uma cópia profunda da configuração.
func (c BusinessSegmentConfig) Clone() BusinessSegmentConfig {
	out := BusinessSegmentConfig{
		CategoriasFinanceiras: CategoriasFinanceiras{
			Entradas: slices.Clone(c.CategoriasFinanceiras.Entradas),
			Saidas:   slices.Clone(c.CategoriasFinanceiras.Saidas),
		},
		TiposPagamento:     slices.Clone(c.TiposPagamento),
		CamposObrigatorios: slices.Clone(c.CamposObrigatorios),
		Validacoes:         slices.Clone(c.Validacoes),
		Relatorios:         slices.Clone(c.Relatorios),
		Funcionalidades:    slices.Clone(c.Funcionalidades),
	}
	if c.Nomenclaturas != nil {
		out.Nomenclaturas = maps.Clone(c.Nomenclaturas)
	}
	return out
}
