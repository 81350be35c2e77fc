package lookup

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

var _ ports.CompanyProvider = (*BrasilAPI)(nil)

// BrasilAPI adaptador de https://brasilapi.com.br. A resposta é convertida para o formato ReceitaWS.
type BrasilAPI struct {
	baseURL string
	client  *http.Client
}

// NewBrasilAPI constrói o adaptador. baseURL normalmente é "https://brasilapi.com.br/api/cnpj/v1".
func NewBrasilAPI(baseURL string, client *http.Client) *BrasilAPI {
	return &BrasilAPI{baseURL: baseURL, client: client}
}

// Name identifica o provedor em logs e métricas.
func (b *BrasilAPI) Name() string { return "brasilapi" }

type brasilAPIResponse struct {
	CNPJ                             string              `json:"cnpj"`
	RazaoSocial                      string              `json:"razao_social"`
	NomeFantasia                     string              `json:"nome_fantasia"`
	DescricaoIdentificadorMatriz     string              `json:"descricao_identificador_matriz_filial"`
	DataInicioAtividade              string              `json:"data_inicio_atividade"`
	CNAEFiscal                       json.Number         `json:"cnae_fiscal"`
	CNAEFiscalDescricao              string              `json:"cnae_fiscal_descricao"`
	NaturezaJuridica                 string              `json:"natureza_juridica"`
	Logradouro                       string              `json:"logradouro"`
	Numero                           string              `json:"numero"`
	Complemento                      string              `json:"complemento"`
	CEP                              string              `json:"cep"`
	Bairro                           string              `json:"bairro"`
	Municipio                        string              `json:"municipio"`
	UF                               string              `json:"uf"`
	Email                            string              `json:"email"`
	DDDTelefone1                     string              `json:"ddd_telefone_1"`
	DescricaoSituacaoCadastral       string              `json:"descricao_situacao_cadastral"`
	DataSituacaoCadastral            string              `json:"data_situacao_cadastral"`
	DescricaoMotivoSituacaoCadastral string              `json:"descricao_motivo_situacao_cadastral"`
	CapitalSocial                    decimal.NullDecimal `json:"capital_social"`
	QSA                              []struct {
		NomeSocio         string `json:"nome_socio"`
		QualificacaoSocio string `json:"qualificacao_socio"`
	} `json:"qsa"`
}

// FindCompany consulta {base}/{cnpj}.
func (b *BrasilAPI) FindCompany(ctx context.Context, cnpj string) (*entity.CompanyRecord, error) {
	var resp brasilAPIResponse
	if err := getJSON(ctx, b.client, b.Name(), joinURL(b.baseURL, cnpj), &resp); err != nil {
		return nil, err
	}
	return resp.toRecord(cnpj), nil
}

func (r *brasilAPIResponse) toRecord(queried string) *entity.CompanyRecord {
	rec := &entity.CompanyRecord{
		CNPJ:                  r.CNPJ,
		Tipo:                  r.DescricaoIdentificadorMatriz,
		Abertura:              r.DataInicioAtividade,
		Nome:                  r.RazaoSocial,
		Fantasia:              r.NomeFantasia,
		AtividadePrincipal:    []entity.Atividade{},
		AtividadesSecundarias: []entity.Atividade{},
		NaturezaJuridica:      r.NaturezaJuridica,
		Logradouro:            r.Logradouro,
		Numero:                r.Numero,
		Complemento:           r.Complemento,
		CEP:                   r.CEP,
		Bairro:                r.Bairro,
		Municipio:             r.Municipio,
		UF:                    r.UF,
		Email:                 r.Email,
		Telefone:              r.DDDTelefone1,
		Situacao:              r.DescricaoSituacaoCadastral,
		DataSituacao:          r.DataSituacaoCadastral,
		MotivoSituacao:        r.DescricaoMotivoSituacaoCadastral,
		QSA:                   make([]entity.Socio, 0, len(r.QSA)),
		Status:                "OK",
	}
	if rec.CNPJ == "" {
		rec.CNPJ = queried
	}
	if r.CNAEFiscalDescricao != "" {
		rec.AtividadePrincipal = append(rec.AtividadePrincipal, entity.Atividade{
			Code: r.CNAEFiscal.String(),
			Text: r.CNAEFiscalDescricao,
		})
	}
	// capital zero ou ausente vira texto vazio
	if r.CapitalSocial.Valid && !r.CapitalSocial.Decimal.IsZero() {
		rec.CapitalSocial = r.CapitalSocial.Decimal.String()
	}
	for _, q := range r.QSA {
		rec.QSA = append(rec.QSA, entity.Socio{Nome: q.NomeSocio, Qual: q.QualificacaoSocio})
	}
	return rec
}
