package entity

// CompanyRecord cadastro de empresa no formato ReceitaWS. Outros provedores são convertidos para ele.
type CompanyRecord struct {
	CNPJ                  string      `json:"cnpj"`
	Nome                  string      `json:"nome"`
	Fantasia              string      `json:"fantasia"`
	Tipo                  string      `json:"tipo"`
	Abertura              string      `json:"abertura"`
	AtividadePrincipal    []Atividade `json:"atividade_principal"`
	AtividadesSecundarias []Atividade `json:"atividades_secundarias"`
	NaturezaJuridica      string      `json:"natureza_juridica"`
	Logradouro            string      `json:"logradouro"`
	Numero                string      `json:"numero"`
	Complemento           string      `json:"complemento"`
	CEP                   string      `json:"cep"`
	Bairro                string      `json:"bairro"`
	Municipio             string      `json:"municipio"`
	UF                    string      `json:"uf"`
	Email                 string      `json:"email"`
	Telefone              string      `json:"telefone"`
	EFR                   string      `json:"efr"`
	Situacao              string      `json:"situacao"`
	DataSituacao          string      `json:"data_situacao"`
	MotivoSituacao        string      `json:"motivo_situacao"`
	SituacaoEspecial      string      `json:"situacao_especial"`
	DataSituacaoEspecial  string      `json:"data_situacao_especial"`
	CapitalSocial         string      `json:"capital_social"`
	QSA                   []Socio     `json:"qsa"`
	Status                string      `json:"status"`
}

// Atividade CNAE com código e descrição.
type Atividade struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Socio integrante do quadro societário.
type Socio struct {
	Nome string `json:"nome"`
	Qual string `json:"qual"`
}
