// Package visual persiste e aplica a identidade visual da empresa (logo e favicon).
package visual

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/domain/repository"
)

// Chaves por empresa.
const (
	LogoKey    = "companyLogo"
	FaviconKey = "companyFavicon"
)

// Config valores persistidos; campos vazios não foram configurados.
type Config struct {
	Logo    string `json:"logo,omitempty"`
	Favicon string `json:"favicon,omitempty"`
}

// ApplyLogo e ApplyFavicon permitem usar Config como alvo de Load.
func (c *Config) ApplyLogo(dataURL string)    { c.Logo = dataURL }
func (c *Config) ApplyFavicon(dataURL string) { c.Favicon = dataURL }

// Service grava os valores e os aplica aos alvos informados e aos alvos registrados para a empresa.
type Service struct {
	store    repository.KeyValueStore
	validate *validator.Validate
	log      zerolog.Logger

	mu         sync.RWMutex
	registered map[string][]ports.VisualTarget
}

// NewService constrói o serviço.
func NewService(store repository.KeyValueStore, log zerolog.Logger) *Service {
	return &Service{
		store:      store,
		validate:   validator.New(),
		log:        log,
		registered: make(map[string][]ports.VisualTarget),
	}
}

// Register associa um alvo permanente à empresa (ex.: as páginas legais da empresa institucional).
func (s *Service) Register(companyID string, target ports.VisualTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registered[companyID] = append(s.registered[companyID], target)
}

// Load aplica logo e favicon persistidos aos alvos. Valores ausentes são ignorados.
func (s *Service) Load(ctx context.Context, companyID string, targets ...ports.VisualTarget) error {
	all := s.targets(companyID, targets)

	logo, found, err := s.store.Get(ctx, repository.CompanyKey(companyID, LogoKey))
	if err != nil {
		return fmt.Errorf("visual: ler logo: %w", err)
	}
	if found && logo != "" {
		for _, t := range all {
			t.ApplyLogo(logo)
		}
	}

	favicon, found, err := s.store.Get(ctx, repository.CompanyKey(companyID, FaviconKey))
	if err != nil {
		return fmt.Errorf("visual: ler favicon: %w", err)
	}
	if found && favicon != "" {
		for _, t := range all {
			t.ApplyFavicon(favicon)
		}
	}
	return nil
}

// SaveLogo grava e aplica o logo. dataURL deve ser um data URI.
func (s *Service) SaveLogo(ctx context.Context, companyID, dataURL string, targets ...ports.VisualTarget) error {
	if err := s.save(ctx, companyID, LogoKey, dataURL); err != nil {
		return err
	}
	for _, t := range s.targets(companyID, targets) {
		t.ApplyLogo(dataURL)
	}
	return nil
}

// SaveFavicon grava e aplica o favicon. dataURL deve ser um data URI.
func (s *Service) SaveFavicon(ctx context.Context, companyID, dataURL string, targets ...ports.VisualTarget) error {
	if err := s.save(ctx, companyID, FaviconKey, dataURL); err != nil {
		return err
	}
	for _, t := range s.targets(companyID, targets) {
		t.ApplyFavicon(dataURL)
	}
	return nil
}

func (s *Service) save(ctx context.Context, companyID, key, dataURL string) error {
	if err := s.validate.Var(dataURL, "required,datauri"); err != nil {
		return fmt.Errorf("visual: %s não é um data URI: %w", key, domain.ErrInvalidInput)
	}
	if !strings.HasPrefix(dataURL, "data:image/") {
		return fmt.Errorf("visual: %s precisa ser uma imagem: %w", key, domain.ErrInvalidInput)
	}
	if err := s.store.Set(ctx, repository.CompanyKey(companyID, key), dataURL); err != nil {
		return fmt.Errorf("visual: gravar %s: %w", key, err)
	}
	s.log.Info().Str("company_id", companyID).Str("key", key).Int("bytes", len(dataURL)).Msg("identidade visual atualizada")
	return nil
}

func (s *Service) targets(companyID string, extra []ports.VisualTarget) []ports.VisualTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ports.VisualTarget, 0, len(extra)+len(s.registered[companyID]))
	out = append(out, extra...)
	return append(out, s.registered[companyID]...)
}
