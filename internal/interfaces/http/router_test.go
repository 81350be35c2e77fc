package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webytehub/ploutosledger-api/internal/application/dto"
	"github.com/webytehub/ploutosledger-api/internal/application/legal"
	"github.com/webytehub/ploutosledger-api/internal/application/lookup"
	"github.com/webytehub/ploutosledger-api/internal/application/onboarding"
	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/application/segment"
	"github.com/webytehub/ploutosledger-api/internal/application/visual"
	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/catalog"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/kvstore"
	apphttp "github.com/webytehub/ploutosledger-api/internal/interfaces/http"
	pkgjwt "github.com/webytehub/ploutosledger-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAddress struct{ calls int32 }

func (f *fakeAddress) Name() string { return "fake-cep" }

func (f *fakeAddress) FindAddress(_ context.Context, cep string) (*entity.Address, error) {
	atomic.AddInt32(&f.calls, 1)
	if cep != "01310100" {
		return nil, domain.ErrNotFound
	}
	return &entity.Address{CEP: "01310-100", Logradouro: "Avenida Paulista", Localidade: "São Paulo", UF: "SP"}, nil
}

type fakeCompany struct{}

func (fakeCompany) Name() string { return "fake-cnpj" }

func (fakeCompany) FindCompany(_ context.Context, cnpj string) (*entity.CompanyRecord, error) {
	if cnpj != "11222333000181" {
		return nil, domain.ErrNotFound
	}
	return &entity.CompanyRecord{CNPJ: "11.222.333/0001-81", Nome: "EMPRESA TESTE LTDA", Status: "OK"}, nil
}

type fakePDF struct{}

func (fakePDF) RenderPDF(_ context.Context, doc *legal.Document) ([]byte, error) {
	return []byte("%PDF-1.4 " + doc.Slug), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app     *fiber.App
	addr    *fakeAddress
	segment *segment.Service
}

func newTestEnv(t *testing.T, pdf legal.PDFRenderer) *testEnv {
	t.Helper()
	log := zerolog.Nop()
	store := kvstore.NewMemory()
	cat, err := catalog.NewDefault()
	require.NoError(t, err)

	addr := &fakeAddress{}
	segmentSvc := segment.NewService(cat, store)
	legalSvc := legal.NewService(legal.Institutional{RazaoSocial: legal.DefaultRazaoSocial, CNPJ: legal.DefaultCNPJ})
	visualSvc := visual.NewService(store, log)
	visualSvc.Register(testCompanyID, legalSvc)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Lookup:     lookup.NewService([]ports.AddressProvider{addr}, []ports.CompanyProvider{fakeCompany{}}, log),
		Segment:    segmentSvc,
		Onboarding: onboarding.NewService(store, log),
		Visual:     visualSvc,
		Legal:      legalSvc,
		LegalPDF:   pdf,
		JWTSecret:  testJWTSecret,
		Log:        log,
	})
	return &testEnv{app: app, addr: addr, segment: segmentSvc}
}

func (e *testEnv) do(t *testing.T, method, target, auth, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máscaras
// ──────────────────────────────────────────────────────────────────────────────

func TestFormat_AplicaMascaraPorTipo(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/format/cep?value=01310100", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.FormatResponse](t, resp)
	assert.Equal(t, "01310-100", out.Value)
	assert.Equal(t, "01310100", out.Input)
}

func TestFormat_TipoDesconhecido_Retorna400(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/format/rg?value=123", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "UNKNOWN_KIND")
}

func TestFormatBody_CPF(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/api/format", "", `{"kind":"cpf","value":"12345678901"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "123.456.789-01", decode[dto.FormatResponse](t, resp).Value)
}

func TestFormatBody_SemTipo_Retorna400(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/api/format", "", `{"value":"123"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "VALIDATION")
}

func TestUnformat_CNPJ(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/unformat/cnpj?value=11.222.333%2F0001-81", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "11222333000181", decode[dto.FormatResponse](t, resp).Value)
}

func TestValidateDocument(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/format/validate?document=11222333000181", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ok := decode[dto.ValidateDocumentResponse](t, resp)
	assert.True(t, ok.Valid)
	assert.Equal(t, "cnpj", ok.Kind)
	assert.Equal(t, "11.222.333/0001-81", ok.Formatted)

	resp = env.do(t, http.MethodGet, "/api/format/validate?document=11222333000182", "", "")
	bad := decode[dto.ValidateDocumentResponse](t, resp)
	assert.False(t, bad.Valid)
	assert.NotEmpty(t, bad.Message)

	resp = env.do(t, http.MethodGet, "/api/format/validate", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestLookupCEP_EncontradoENaoEncontrado(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/lookup/cep/01310-100", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	addr := decode[entity.Address](t, resp)
	assert.Equal(t, "São Paulo", addr.Localidade)

	resp = env.do(t, http.MethodGet, "/api/lookup/cep/99999999", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLookupCEP_TamanhoInvalidoNaoConsultaProvedor(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/lookup/cep/0131", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(&env.addr.calls))
}

func TestLookupCNPJ(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/lookup/cnpj/11222333000181", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "EMPRESA TESTE LTDA", decode[entity.CompanyRecord](t, resp).Nome)
}

// ──────────────────────────────────────────────────────────────────────────────
// Segmento
// ──────────────────────────────────────────────────────────────────────────────

func TestSegment_SemToken_Retorna401(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/segment", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSegment_SemVinculoAdotaGenerico(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/segment", tokenForRole(t, pkgjwt.RoleOperador), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SegmentResponse](t, resp)
	require.NotNil(t, out.Segment)
	assert.Equal(t, entity.CategoryComercio, out.Category)
	assert.Contains(t, out.TiposPagamento, "boletos")

	persisted, err := env.segment.GetCompanySegment(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, entity.GenericRetailCode, persisted.Segment.Codigo)
}

func TestSegment_TrocaParaAlimentacao(t *testing.T) {
	env := newTestEnv(t, nil)
	food, err := env.segment.GetSegmentByCode(context.Background(), "ALI_RESTAURANTE")
	require.NoError(t, err)
	require.NotNil(t, food)

	resp := env.do(t, http.MethodPut, "/api/segment", tokenForRole(t, pkgjwt.RoleGerente), `{"segment_id":"`+food.ID+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.CategoryAlimentacaoBebidas, decode[dto.SegmentResponse](t, resp).Category)

	auth := tokenForRole(t, pkgjwt.RoleOperador)

	resp = env.do(t, http.MethodGet, "/api/segment/payment-methods", auth, "")
	pm := decode[dto.PaymentMethodsResponse](t, resp)
	assert.Equal(t, []string{"dinheiro", "pix", "cartaoCredito", "cartaoDebito", "vr", "va"}, pm.Visible)
	assert.Contains(t, pm.Hidden, "comissaoPuxador")
	assert.True(t, pm.ShowVRVA)

	resp = env.do(t, http.MethodGet, "/api/segment/features/vr_va", auth, "")
	assert.True(t, decode[dto.FeatureResponse](t, resp).Active)

	resp = env.do(t, http.MethodGet, "/api/segment/terms/produto", auth, "")
	assert.Equal(t, "Prato", decode[dto.TermResponse](t, resp).Value)

	resp = env.do(t, http.MethodGet, "/api/segment/terms/fornecedor", auth, "")
	assert.Equal(t, "fornecedor", decode[dto.TermResponse](t, resp).Value)
}

func TestSegment_Put_Erros(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodPut, "/api/segment", tokenForRole(t, pkgjwt.RoleOperador), `{"segment_id":"x"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/segment", tokenForRole(t, pkgjwt.RoleAdmin), `{"segment_id":"inexistente"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/segment", tokenForRole(t, pkgjwt.RoleAdmin), `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSegment_CatalogoFiltrado(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/segment/catalog?q=servi", tokenForRole(t, pkgjwt.RoleOperador), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SegmentListResponse](t, resp)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "SRV_PRESTADOR", out.Items[0].Codigo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Primeiro uso
// ──────────────────────────────────────────────────────────────────────────────

func TestOnboarding_Fluxo(t *testing.T) {
	env := newTestEnv(t, nil)
	auth := tokenForRole(t, pkgjwt.RoleOperador)

	st := decode[onboarding.State](t, env.do(t, http.MethodGet, "/api/onboarding", auth, ""))
	assert.True(t, st.IsFirstDay)
	assert.Empty(t, st.CompletedSteps)

	st = decode[onboarding.State](t, env.do(t, http.MethodPost, "/api/onboarding/steps/abrir-caixa", auth, ""))
	assert.Equal(t, []string{"abrir-caixa"}, st.CompletedSteps)

	st = decode[onboarding.State](t, env.do(t, http.MethodPost, "/api/onboarding/complete", auth, ""))
	assert.False(t, st.IsFirstDay)
	assert.False(t, st.ShowTooltips)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidade visual e páginas legais
// ──────────────────────────────────────────────────────────────────────────────

const pngDataURL = "data:image/png;base64,iVBORw0KGgo="

func TestVisual_LogoAparecePaginaLegal(t *testing.T) {
	env := newTestEnv(t, nil)
	auth := tokenForRole(t, pkgjwt.RoleAdmin)

	resp := env.do(t, http.MethodPut, "/api/visual/logo", auth, `{"data_url":"nao-e-data-uri"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/visual/logo", auth, `{"data_url":"data:text/plain;base64,aGVsbG8="}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/visual/logo", auth, `{"data_url":"`+pngDataURL+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pngDataURL, decode[visual.Config](t, resp).Logo)

	cfg := decode[visual.Config](t, env.do(t, http.MethodGet, "/api/visual", auth, ""))
	assert.Equal(t, pngDataURL, cfg.Logo)
	assert.Empty(t, cfg.Favicon)

	page := readBody(t, env.do(t, http.MethodGet, "/"+legal.SlugPrivacy, "", ""))
	assert.Contains(t, page, pngDataURL)
}

func TestLegal_PaginaHTML(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/"+legal.SlugTerms, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	page := readBody(t, resp)
	assert.Contains(t, page, "Termos de Uso")
	assert.Contains(t, page, "Voltar ao início")
	assert.Contains(t, page, legal.DefaultCNPJ)
	assert.Contains(t, page, "Última atualização: "+time.Now().Format("02/01/2006"))
}

func TestLegal_PDF(t *testing.T) {
	env := newTestEnv(t, fakePDF{})

	resp := env.do(t, http.MethodGet, "/"+legal.SlugPrivacy+".pdf", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(readBody(t, resp), "%PDF"))

	noPDF := newTestEnv(t, nil)
	resp = noPDF.do(t, http.MethodGet, "/"+legal.SlugPrivacy+".pdf", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInstitutional(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/api/institutional", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	footer := decode[legal.Footer](t, resp)
	assert.Equal(t, legal.DefaultRazaoSocial, footer.RazaoSocial)
	require.Len(t, footer.Links, 2)
	assert.Equal(t, "/"+legal.SlugPrivacy, footer.Links[0].Href)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

type recordedRequest struct{ method, route, status string }

type recordingObserver struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (r *recordingObserver) ObserveRequest(method, route, status string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, recordedRequest{method, route, status})
}

func TestRequestMetrics_UsaPadraoDaRota(t *testing.T) {
	obs := &recordingObserver{}
	app := fiber.New()
	app.Use(apphttp.RequestMetrics(obs))
	app.Get("/itens/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/falha", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "x") })

	for _, target := range []string{"/itens/1", "/itens/2", "/falha"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	obs.mu.Lock()
	defer obs.mu.Unlock()
	require.Len(t, obs.reqs, 3)
	assert.Equal(t, recordedRequest{"GET", "/itens/:id", "204"}, obs.reqs[0])
	assert.Equal(t, recordedRequest{"GET", "/itens/:id", "204"}, obs.reqs[1])
	assert.Equal(t, recordedRequest{"GET", "/falha", "418"}, obs.reqs[2])
}
