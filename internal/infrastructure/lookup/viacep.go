package lookup

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

var _ ports.AddressProvider = (*ViaCEP)(nil)

// ViaCEP adaptador de https://viacep.com.br.
type ViaCEP struct {
	baseURL string
	client  *http.Client
}

// NewViaCEP constrói o adaptador. baseURL normalmente é "https://viacep.com.br/ws".
func NewViaCEP(baseURL string, client *http.Client) *ViaCEP {
	return &ViaCEP{baseURL: baseURL, client: client}
}

// Name identifica o provedor em logs e métricas.
func (v *ViaCEP) Name() string { return "viacep" }

// viaCEPResponse o campo erro chega como true ou "true" conforme a versão da API.
type viaCEPResponse struct {
	entity.Address
	Erro flexBool `json:"erro"`
}

// FindAddress consulta {base}/{cep}/json/.
func (v *ViaCEP) FindAddress(ctx context.Context, cep string) (*entity.Address, error) {
	var resp viaCEPResponse
	if err := getJSON(ctx, v.client, v.Name(), joinURL(v.baseURL, cep+"/json/"), &resp); err != nil {
		return nil, err
	}
	if resp.Erro {
		return nil, fmt.Errorf("viacep: CEP %s: %w", cep, domain.ErrNotFound)
	}
	addr := resp.Address
	return &addr, nil
}

// flexBool aceita true/false em JSON como booleano ou texto.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	*b = flexBool(strings.EqualFold(s, "true"))
	return nil
}
