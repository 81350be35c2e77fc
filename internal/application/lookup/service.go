// Package lookup consulta endereços (CEP) e cadastros de empresa (CNPJ) em serviços externos,
// tentando os provedores em ordem até obter uma resposta.
package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
	"github.com/webytehub/ploutosledger-api/pkg/formatter"
	"github.com/webytehub/ploutosledger-api/pkg/perf"
)

// unavailableWarnInterval janela mínima entre avisos de provedor indisponível no log.
const unavailableWarnInterval = 30 * time.Second

type unavailableEvent struct {
	kind     string
	provider string
	key      string
}

// Service executa as consultas. Nunca devolve erro: o resultado está presente ou ausente.
// Não há cache nem limitação de taxa.
type Service struct {
	addressProviders []ports.AddressProvider
	companyProviders []ports.CompanyProvider
	observer         ports.LookupObserver
	log              zerolog.Logger
	warnUnavailable  *perf.Throttler[unavailableEvent]
}

// Option configura o Service.
type Option func(*Service)

// WithObserver registra um observador das tentativas (métricas).
func WithObserver(o ports.LookupObserver) Option {
	return func(s *Service) { s.observer = o }
}

// NewService constrói o serviço com as cadeias de provedores na ordem de preferência.
func NewService(addr []ports.AddressProvider, company []ports.CompanyProvider, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		addressProviders: addr,
		companyProviders: company,
		log:              log,
	}
	s.warnUnavailable = perf.Throttle(func(e unavailableEvent) {
		s.log.Warn().Str("kind", e.kind).Str("provider", e.provider).Str("key", e.key).
			Msg("lookup: provedor indisponível, tentando o próximo")
	}, unavailableWarnInterval)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindAddress busca o endereço de um CEP. Entradas que não tenham exatamente 8 dígitos
// devolvem false sem nenhuma requisição.
func (s *Service) FindAddress(ctx context.Context, cep string) (*entity.Address, bool) {
	digits := formatter.Digits(cep)
	if len(digits) != formatter.MaxCEPDigits {
		return nil, false
	}
	attempts := make([]attempt[entity.Address], 0, len(s.addressProviders))
	for _, p := range s.addressProviders {
		attempts = append(attempts, attempt[entity.Address]{
			provider: p.Name(),
			call:     func() (*entity.Address, error) { return p.FindAddress(ctx, digits) },
		})
	}
	return run(s, ports.LookupKindCEP, digits, attempts)
}

// FindCompany busca o cadastro de um CNPJ. Entradas que não tenham exatamente 14 dígitos
// devolvem false sem nenhuma requisição.
func (s *Service) FindCompany(ctx context.Context, cnpj string) (*entity.CompanyRecord, bool) {
	digits := formatter.Digits(cnpj)
	if len(digits) != formatter.MaxCNPJDigits {
		return nil, false
	}
	attempts := make([]attempt[entity.CompanyRecord], 0, len(s.companyProviders))
	for _, p := range s.companyProviders {
		attempts = append(attempts, attempt[entity.CompanyRecord]{
			provider: p.Name(),
			call:     func() (*entity.CompanyRecord, error) { return p.FindCompany(ctx, digits) },
		})
	}
	return run(s, ports.LookupKindCNPJ, digits, attempts)
}

type attempt[R any] struct {
	provider string
	call     func() (*R, error)
}

// run percorre a cadeia. Só ErrProviderUnavailable passa ao próximo provedor;
// "não encontrado" e erros de rede ou de parse encerram a consulta.
func run[R any](s *Service, kind, key string, attempts []attempt[R]) (*R, bool) {
	for _, a := range attempts {
		start := time.Now()
		res, err := a.call()
		elapsed := time.Since(start)

		switch {
		case err == nil && res != nil:
			s.observe(kind, a.provider, ports.OutcomeFound, elapsed)
			return res, true
		case err == nil, errors.Is(err, domain.ErrNotFound):
			s.observe(kind, a.provider, ports.OutcomeNotFound, elapsed)
			s.log.Debug().Str("kind", kind).Str("provider", a.provider).Str("key", key).Msg("lookup: não encontrado")
			return nil, false
		case errors.Is(err, ports.ErrProviderUnavailable):
			s.observe(kind, a.provider, ports.OutcomeUnavailable, elapsed)
			s.warnUnavailable.Call(unavailableEvent{kind: kind, provider: a.provider, key: key})
		default:
			s.observe(kind, a.provider, ports.OutcomeError, elapsed)
			s.log.Error().Err(err).Str("kind", kind).Str("provider", a.provider).Str("key", key).Msg("lookup: falha na consulta")
			return nil, false
		}
	}
	return nil, false
}

func (s *Service) observe(kind, provider, outcome string, elapsed time.Duration) {
	if s.observer != nil {
		s.observer.ObserveLookup(kind, provider, outcome, elapsed)
	}
}
