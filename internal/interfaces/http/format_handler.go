package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/webytehub/ploutosledger-api/internal/application/dto"
	"github.com/webytehub/ploutosledger-api/pkg/formatter"
)

// FormatHandler expõe as máscaras de entrada e a validação de CPF/CNPJ.
type FormatHandler struct{}

// NewFormatHandler constrói o handler.
func NewFormatHandler() *FormatHandler { return &FormatHandler{} }

// Format godoc
// @Summary      Aplicar máscara
// @Tags         format
// @Produce      json
// @Param        kind   path   string  true  "Tipo (phone, cpf, cnpj, cpfcnpj, cep, currency, number, percentage, creditcard, date)"
// @Param        value  query  string  false "Valor digitado"
// @Success      200    {object}  dto.FormatResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/format/{kind} [get]
func (h *FormatHandler) Format(c *fiber.Ctx) error {
	return h.respond(c, c.Params("kind"), c.Query("value"), formatter.Apply)
}

// Unformat godoc
// @Summary      Remover máscara
// @Tags         format
// @Produce      json
// @Param        kind   path   string  true  "Tipo"
// @Param        value  query  string  false "Valor formatado"
// @Success      200    {object}  dto.FormatResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/unformat/{kind} [get]
func (h *FormatHandler) Unformat(c *fiber.Ctx) error {
	return h.respond(c, c.Params("kind"), c.Query("value"), formatter.Remove)
}

// FormatBody godoc
// @Summary      Aplicar máscara (corpo JSON)
// @Tags         format
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FormatRequest  true  "Tipo e valor"
// @Success      200   {object}  dto.FormatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/format [post]
func (h *FormatHandler) FormatBody(c *fiber.Ctx) error {
	var in dto.FormatRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return h.respond(c, in.Kind, in.Value, formatter.Apply)
}

// ValidateDocument godoc
// @Summary      Validar CPF ou CNPJ
// @Tags         format
// @Produce      json
// @Param        document  query  string  true  "CPF ou CNPJ, com ou sem máscara"
// @Success      200       {object}  dto.ValidateDocumentResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/format/validate [get]
func (h *FormatHandler) ValidateDocument(c *fiber.Ctx) error {
	doc := c.Query("document")
	if doc == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "document é obrigatório"})
	}
	kind, err := formatter.ValidateDocument(doc)
	out := dto.ValidateDocumentResponse{Document: doc, Kind: string(kind), Valid: err == nil}
	if err != nil {
		out.Message = err.Error()
	} else {
		out.Formatted = formatter.FormatCPFCNPJ(doc)
	}
	return c.JSON(out)
}

func (h *FormatHandler) respond(c *fiber.Ctx, kind, value string, fn func(string, formatter.Kind) string) error {
	k := formatter.Kind(kind)
	if !k.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_KIND", Message: "tipo de máscara desconhecido: " + kind})
	}
	return c.JSON(dto.FormatResponse{Kind: kind, Input: value, Value: fn(value, k)})
}
