package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/application/dto"
	"github.com/webytehub/ploutosledger-api/internal/application/segment"
	"github.com/webytehub/ploutosledger-api/internal/domain/payment"
)

// SegmentHandler configuração do ramo de atuação da empresa do token.
type SegmentHandler struct {
	svc *segment.Service
	log zerolog.Logger
}

// NewSegmentHandler constrói o handler.
func NewSegmentHandler(svc *segment.Service, log zerolog.Logger) *SegmentHandler {
	return &SegmentHandler{svc: svc, log: log}
}

// view carrega a configuração da empresa; sem vínculo, adota e grava o segmento genérico.
func (h *SegmentHandler) view(c *fiber.Ctx) *segment.View {
	return segment.NewLoader(h.svc, GetCompanyID(c), h.log).Load(c.UserContext())
}

// Get godoc
// @Summary      Configuração do segmento da empresa
// @Tags         segment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SegmentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/segment [get]
func (h *SegmentHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toSegmentResponse(h.view(c)))
}

// Catalog godoc
// @Summary      Listar segmentos disponíveis
// @Tags         segment
// @Produce      json
// @Security     BearerAuth
// @Param        q    query  string  false  "Filtro por nome, código ou categoria"
// @Success      200  {object}  dto.SegmentListResponse
// @Router       /api/segment/catalog [get]
func (h *SegmentHandler) Catalog(c *fiber.Ctx) error {
	items, err := h.svc.ListSegments(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SegmentListResponse{Items: items, Total: len(items)})
}

// Set godoc
// @Summary      Definir o segmento da empresa
// @Tags         segment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SetSegmentRequest  true  "Segmento escolhido"
// @Success      200   {object}  dto.SegmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/segment [put]
func (h *SegmentHandler) Set(c *fiber.Ctx) error {
	var in dto.SetSegmentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cs, err := h.svc.SetCompanySegment(c.UserContext(), GetCompanyID(c), in.SegmentID)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Info().Str("company_id", cs.CompanyID).Str("segment_id", cs.SegmentID).Msg("segmento da empresa atualizado")
	return c.JSON(toSegmentResponse(segment.NewView(cs)))
}

// Term godoc
// @Summary      Traduzir termo para o vocabulário do segmento
// @Tags         segment
// @Produce      json
// @Security     BearerAuth
// @Param        term  path  string  true  "Termo padrão"
// @Success      200   {object}  dto.TermResponse
// @Router       /api/segment/terms/{term} [get]
func (h *SegmentHandler) Term(c *fiber.Ctx) error {
	term := pathParam(c, "term")
	return c.JSON(dto.TermResponse{Term: term, Value: h.view(c).GetTerm(term)})
}

// Feature godoc
// @Summary      Verificar funcionalidade ativa
// @Tags         segment
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  string  true  "Código da funcionalidade"
// @Success      200   {object}  dto.FeatureResponse
// @Router       /api/segment/features/{code} [get]
func (h *SegmentHandler) Feature(c *fiber.Ctx) error {
	code := pathParam(c, "code")
	return c.JSON(dto.FeatureResponse{Code: code, Active: h.view(c).HasFuncionalidade(code)})
}

// PaymentMethods godoc
// @Summary      Formas de pagamento exibidas para o segmento
// @Tags         segment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PaymentMethodsResponse
// @Router       /api/segment/payment-methods [get]
func (h *SegmentHandler) PaymentMethods(c *fiber.Ctx) error {
	v := h.view(c)
	category := v.Category()
	return c.JSON(dto.PaymentMethodsResponse{
		Category: category,
		Visible:  payment.VisibleMethods(v.TiposPagamento(), category),
		Hidden:   payment.HiddenPaymentMethods(category),
		ShowVRVA: payment.ShouldShowVRVA(category),
	})
}

func toSegmentResponse(v *segment.View) dto.SegmentResponse {
	return dto.SegmentResponse{
		Segment:            v.CompanySegment(),
		Category:           v.Category(),
		Nomenclaturas:      v.Nomenclaturas(),
		CategoriasEntradas: v.CategoriasEntradas(),
		CategoriasSaidas:   v.CategoriasSaidas(),
		TiposPagamento:     v.TiposPagamento(),
		CamposObrigatorios: v.CamposObrigatorios(),
		Validacoes:         v.Validacoes(),
		Relatorios:         v.Relatorios(),
		Funcionalidades:    v.Funcionalidades(),
	}
}
