package ports

import (
	"context"
	"errors"
	"time"

	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

// ErrProviderUnavailable o provedor respondeu com status HTTP fora da faixa 2xx.
// O serviço de consulta passa então ao próximo provedor da cadeia.
var ErrProviderUnavailable = errors.New("lookup: provedor indisponível")

// AddressProvider consulta endereços por CEP (8 dígitos).
// Devolve domain.ErrNotFound quando o provedor informa explicitamente que o CEP não existe.
type AddressProvider interface {
	Name() string
	FindAddress(ctx context.Context, cep string) (*entity.Address, error)
}

// CompanyProvider consulta o cadastro de empresas por CNPJ (14 dígitos).
type CompanyProvider interface {
	Name() string
	FindCompany(ctx context.Context, cnpj string) (*entity.CompanyRecord, error)
}

// Tipos de consulta e resultados reportados ao LookupObserver.
const (
	LookupKindCEP  = "cep"
	LookupKindCNPJ = "cnpj"

	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// LookupObserver recebe o resultado de cada tentativa feita a um provedor.
type LookupObserver interface {
	ObserveLookup(kind, provider, outcome string, elapsed time.Duration)
}
