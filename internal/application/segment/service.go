// Package segment gerencia o ramo de atuação da empresa: catálogo, vínculo persistido
// e a visão derivada (termos, categorias financeiras, funcionalidades).
package segment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
	"github.com/webytehub/ploutosledger-api/internal/domain/repository"
	"github.com/webytehub/ploutosledger-api/pkg/perf"
)

// ErrCorruptLink vínculo persistido ilegível.
var ErrCorruptLink = errors.New("segment: vínculo corrompido")

// companySegmentKey chave (por empresa) do vínculo persistido.
const companySegmentKey = "company_business_segment"

// Service consulta o catálogo e persiste o segmento escolhido por cada empresa.
type Service struct {
	catalog repository.SegmentCatalog
	store   repository.KeyValueStore
	now     func() time.Time
}

// NewService constrói o serviço.
func NewService(catalog repository.SegmentCatalog, store repository.KeyValueStore) *Service {
	return &Service{catalog: catalog, store: store, now: time.Now}
}

// GetCompanySegment devolve o vínculo persistido ou (nil, nil) se a empresa ainda não tem segmento.
func (s *Service) GetCompanySegment(ctx context.Context, companyID string) (*entity.CompanyBusinessSegment, error) {
	raw, found, err := s.store.Get(ctx, repository.CompanyKey(companyID, companySegmentKey))
	if err != nil {
		return nil, fmt.Errorf("segment: ler vínculo: %w", err)
	}
	if !found {
		return nil, nil
	}
	var cs entity.CompanyBusinessSegment
	if err := json.Unmarshal([]byte(raw), &cs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLink, err)
	}
	return &cs, nil
}

// GetSegmentByCode devolve o segmento do catálogo ou (nil, nil).
func (s *Service) GetSegmentByCode(ctx context.Context, code string) (*entity.BusinessSegment, error) {
	return s.catalog.GetByCode(ctx, code)
}

// GetSegmentByID devolve o segmento do catálogo ou (nil, nil).
func (s *Service) GetSegmentByID(ctx context.Context, id string) (*entity.BusinessSegment, error) {
	return s.catalog.GetByID(ctx, id)
}

// ListSegments lista o catálogo. term filtra por nome, código ou categoria (sem diferenciar maiúsculas).
func (s *Service) ListSegments(ctx context.Context, term string) ([]*entity.BusinessSegment, error) {
	all, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("segment: listar catálogo: %w", err)
	}
	return perf.FilterList(all, strings.TrimSpace(term), matchSegment), nil
}

func matchSegment(seg *entity.BusinessSegment, term string) bool {
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(seg.Nome), t) ||
		strings.Contains(strings.ToLower(seg.Codigo), t) ||
		strings.Contains(strings.ToLower(seg.Categoria), t)
}

// SetCompanySegment vincula a empresa ao segmento segmentID, copiando a configuração do catálogo.
// Um vínculo anterior mantém ID e data de criação.
func (s *Service) SetCompanySegment(ctx context.Context, companyID, segmentID string) (*entity.CompanyBusinessSegment, error) {
	if companyID == "" || segmentID == "" {
		return nil, fmt.Errorf("segment: empresa e segmento são obrigatórios: %w", domain.ErrInvalidInput)
	}
	seg, err := s.catalog.GetByID(ctx, segmentID)
	if err != nil {
		return nil, fmt.Errorf("segment: buscar segmento: %w", err)
	}
	if seg == nil {
		return nil, fmt.Errorf("segment: segmento %s: %w", segmentID, domain.ErrNotFound)
	}

	now := s.now().UTC()
	cs := &entity.CompanyBusinessSegment{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		CreatedAt: now,
	}
	// vínculo corrompido é sobrescrito
	if prev, err := s.GetCompanySegment(ctx, companyID); err == nil && prev != nil {
		cs.ID = prev.ID
		cs.CreatedAt = prev.CreatedAt
	}
	cs.SegmentID = seg.ID
	cs.Segment = seg
	cs.Config = seg.Config.Clone()
	cs.UpdatedAt = now

	raw, err := json.Marshal(cs)
	if err != nil {
		return nil, fmt.Errorf("segment: serializar vínculo: %w", err)
	}
	if err := s.store.Set(ctx, repository.CompanyKey(companyID, companySegmentKey), string(raw)); err != nil {
		return nil, fmt.Errorf("segment: gravar vínculo: %w", err)
	}
	return cs, nil
}
