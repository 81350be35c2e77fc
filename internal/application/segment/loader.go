package segment

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

// State estado do carregamento.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Loader carrega o segmento de uma empresa. Sem vínculo persistido (ou com vínculo ilegível),
// adota e grava o varejo genérico. Falhas são registradas no log e o loader termina pronto,
// sem configuração.
type Loader struct {
	svc       *Service
	companyID string
	log       zerolog.Logger

	mu    sync.RWMutex
	state State
	view  *View
}

// NewLoader cria o loader no estado loading.
func NewLoader(svc *Service, companyID string, log zerolog.Logger) *Loader {
	return &Loader{
		svc:       svc,
		companyID: companyID,
		log:       log.With().Str("company_id", companyID).Logger(),
		state:     StateLoading,
		view:      NewView(nil),
	}
}

// Load executa o carregamento e devolve a visão resultante.
func (l *Loader) Load(ctx context.Context) *View {
	cs, ok := l.resolve(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if ok {
		l.view = NewView(cs)
	}
	l.state = StateReady
	return l.view
}

// Refresh recarrega o vínculo; em caso de falha a visão anterior é mantida.
func (l *Loader) Refresh(ctx context.Context) *View {
	return l.Load(ctx)
}

// State estado atual.
func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// View visão atual.
func (l *Loader) View() *View {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.view
}

// resolve devolve ok=false quando nada deve ser adotado.
func (l *Loader) resolve(ctx context.Context) (*entity.CompanyBusinessSegment, bool) {
	cs, err := l.svc.GetCompanySegment(ctx, l.companyID)
	switch {
	case errors.Is(err, ErrCorruptLink):
		// tratado como ausente; o padrão sobrescreve o registro
		l.log.Warn().Err(err).Msg("vínculo ilegível, adotando segmento padrão")
	case err != nil:
		l.log.Error().Err(err).Msg("erro ao carregar segmento")
		return nil, false
	case cs != nil:
		return cs, true
	}

	generic, err := l.svc.GetSegmentByCode(ctx, entity.GenericRetailCode)
	if err != nil {
		l.log.Error().Err(err).Msg("erro ao buscar segmento padrão")
		return nil, false
	}
	if generic == nil {
		l.log.Warn().Str("codigo", entity.GenericRetailCode).Msg("segmento padrão ausente do catálogo")
		return nil, false
	}
	cs, err = l.svc.SetCompanySegment(ctx, l.companyID, generic.ID)
	if err != nil {
		l.log.Error().Err(err).Msg("erro ao gravar segmento padrão")
		return nil, false
	}
	l.log.Info().Str("segment_id", generic.ID).Msg("segmento padrão adotado")
	return cs, true
}
