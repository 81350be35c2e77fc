package lookup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

var _ ports.CompanyProvider = (*ReceitaWS)(nil)

// ReceitaWS adaptador da API pública https://www.receitaws.com.br (gratuita, com limite de uso).
type ReceitaWS struct {
	baseURL string
	client  *http.Client
}

// NewReceitaWS constrói o adaptador. baseURL normalmente é "https://www.receitaws.com.br/v1/cnpj".
func NewReceitaWS(baseURL string, client *http.Client) *ReceitaWS {
	return &ReceitaWS{baseURL: baseURL, client: client}
}

// Name identifica o provedor em logs e métricas.
func (r *ReceitaWS) Name() string { return "receitaws" }

type receitaWSResponse struct {
	entity.CompanyRecord
	Message string `json:"message"`
}

// FindCompany consulta {base}/{cnpj}. status "ERROR" ou message preenchida significam não encontrado.
func (r *ReceitaWS) FindCompany(ctx context.Context, cnpj string) (*entity.CompanyRecord, error) {
	var resp receitaWSResponse
	if err := getJSON(ctx, r.client, r.Name(), joinURL(r.baseURL, cnpj), &resp); err != nil {
		return nil, err
	}
	if resp.Status == "ERROR" || resp.Message != "" {
		return nil, fmt.Errorf("receitaws: CNPJ %s: %s: %w", cnpj, resp.Message, domain.ErrNotFound)
	}
	rec := resp.CompanyRecord
	return &rec, nil
}
