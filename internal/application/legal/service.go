// Package legal monta as páginas legais (política de privacidade, termos de uso) e os dados
// institucionais do rodapé. A renderização (HTML e PDF) fica na camada de interfaces/infrastructure.
package legal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/domain"
)

// Valores institucionais usados quando a configuração não informa outros.
const (
	DefaultRazaoSocial = "Webyte Hub"
	DefaultCNPJ        = "29.793.949/0001-78"
)

var _ ports.VisualTarget = (*Service)(nil)

// Institutional razão social e CNPJ exibidos nas páginas.
type Institutional struct {
	RazaoSocial string
	CNPJ        string
}

// Link link do rodapé institucional.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Footer dados do rodapé institucional.
type Footer struct {
	RazaoSocial string   `json:"razao_social"`
	CNPJ        string   `json:"cnpj"`
	Selos       []string `json:"selos"`
	Links       []Link   `json:"links"`
	Copyright   string   `json:"copyright"`
}

// Document documento legal pronto para renderização.
type Document struct {
	Slug      string
	Title     string
	Intro     string
	UpdatedAt time.Time
	Sections  []Section
	Copyright string
	BackHref  string
	BackLabel string
	Logo      string // data URL, vazio se não configurado
	Favicon   string
}

// Service monta os documentos legais. Implementa ports.VisualTarget para exibir logo e favicon.
type Service struct {
	info Institutional
	now  func() time.Time

	mu      sync.RWMutex
	logo    string
	favicon string
}

// NewService constrói o serviço; campos vazios recebem os valores padrão.
func NewService(info Institutional) *Service {
	if info.RazaoSocial == "" {
		info.RazaoSocial = DefaultRazaoSocial
	}
	if info.CNPJ == "" {
		info.CNPJ = DefaultCNPJ
	}
	return &Service{info: info, now: time.Now}
}

// WithClock substitui o relógio (testes).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ApplyLogo guarda o logo exibido nas páginas.
func (s *Service) ApplyLogo(dataURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logo = dataURL
}

// ApplyFavicon guarda o favicon das páginas.
func (s *Service) ApplyFavicon(dataURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favicon = dataURL
}

// Footer devolve os dados do rodapé institucional.
func (s *Service) Footer() Footer {
	return Footer{
		RazaoSocial: s.info.RazaoSocial,
		CNPJ:        s.info.CNPJ,
		Selos:       []string{"Dados protegidos", "Backups automáticos", "Conformidade com LGPD"},
		Links: []Link{
			{Label: "Política de Privacidade", Href: "/" + SlugPrivacy},
			{Label: "Termos de Uso", Href: "/" + SlugTerms},
		},
		Copyright: s.copyright(s.now()),
	}
}

// Document devolve o documento identificado por slug.
func (s *Service) Document(slug string) (*Document, error) {
	now := s.now()
	date := now.Format("02/01/2006")
	name, cnpj := s.info.RazaoSocial, s.info.CNPJ

	var doc Document
	switch slug {
	case SlugPrivacy:
		doc = Document{
			Title:    "Política de Privacidade",
			Intro:    fmt.Sprintf("Última atualização: %s. %s, CNPJ %s, compromete-se com a proteção dos seus dados conforme a LGPD (Lei Geral de Proteção de Dados).", date, name, cnpj),
			Sections: privacySections(name, cnpj),
		}
	case SlugTerms:
		doc = Document{
			Title:    "Termos de Uso",
			Intro:    fmt.Sprintf("Última atualização: %s. Ao utilizar o Sistema de Movimento de Caixa (PloutosLedger), você concorda com estes Termos de Uso.", date),
			Sections: termsSections(name, cnpj),
		}
	default:
		return nil, fmt.Errorf("documento %q: %w", slug, domain.ErrNotFound)
	}

	s.mu.RLock()
	doc.Logo, doc.Favicon = s.logo, s.favicon
	s.mu.RUnlock()

	doc.Slug = slug
	doc.UpdatedAt = now
	doc.Copyright = s.copyright(now)
	doc.BackHref = "/"
	doc.BackLabel = "Voltar ao início"
	return &doc, nil
}

func (s *Service) copyright(now time.Time) string {
	return fmt.Sprintf("© %d %s. CNPJ %s. Todos os direitos reservados.", now.Year(), s.info.RazaoSocial, s.info.CNPJ)
}

// PDFRenderer gera a versão PDF de um documento.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc *Document) ([]byte, error)
}
