package legal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webytehub/ploutosledger-api/internal/application/legal"
	"github.com/webytehub/ploutosledger-api/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
}

func TestDocument_PoliticaDePrivacidade(t *testing.T) {
	svc := legal.NewService(legal.Institutional{}).WithClock(fixedClock)

	doc, err := svc.Document(legal.SlugPrivacy)
	require.NoError(t, err)

	assert.Equal(t, "Política de Privacidade", doc.Title)
	assert.Len(t, doc.Sections, 6)
	assert.Equal(t, "1. Dados que coletamos", doc.Sections[0].Heading())
	assert.Contains(t, doc.Intro, "Última atualização: 07/03/2026.")
	assert.Contains(t, doc.Intro, "Webyte Hub, CNPJ 29.793.949/0001-78")
	assert.Equal(t, "© 2026 Webyte Hub. CNPJ 29.793.949/0001-78. Todos os direitos reservados.", doc.Copyright)
	assert.Equal(t, "/", doc.BackHref)
	assert.Equal(t, "Voltar ao início", doc.BackLabel)
}

func TestDocument_TermosDeUsoComEmpresaConfigurada(t *testing.T) {
	svc := legal.NewService(legal.Institutional{RazaoSocial: "Padaria Pão Quente", CNPJ: "11.222.333/0001-81"}).WithClock(fixedClock)

	doc, err := svc.Document(legal.SlugTerms)
	require.NoError(t, err)

	assert.Len(t, doc.Sections, 9)
	assert.Equal(t, "9. Contato", doc.Sections[8].Heading())
	assert.Contains(t, doc.Sections[0].Body, "Padaria Pão Quente, CNPJ 11.222.333/0001-81")
	assert.Contains(t, doc.Copyright, "© 2026 Padaria Pão Quente.")
}

func TestDocument_SlugDesconhecido(t *testing.T) {
	_, err := legal.NewService(legal.Institutional{}).Document("cookies")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AplicaIdentidadeVisual(t *testing.T) {
	svc := legal.NewService(legal.Institutional{})
	svc.ApplyLogo("data:image/png;base64,AAAA")
	svc.ApplyFavicon("data:image/x-icon;base64,BBBB")

	doc, err := svc.Document(legal.SlugPrivacy)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", doc.Logo)
	assert.Equal(t, "data:image/x-icon;base64,BBBB", doc.Favicon)
}

func TestFooter(t *testing.T) {
	f := legal.NewService(legal.Institutional{}).WithClock(fixedClock).Footer()

	assert.Equal(t, "Webyte Hub", f.RazaoSocial)
	assert.Equal(t, "29.793.949/0001-78", f.CNPJ)
	require.Len(t, f.Links, 2)
	assert.Equal(t, "/politica-de-privacidade", f.Links[0].Href)
	assert.Equal(t, "/termos-de-uso", f.Links[1].Href)
	assert.Contains(t, f.Selos, "Conformidade com LGPD")
}
