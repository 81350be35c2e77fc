package http

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/application/legal"
)

//go:embed templates/legal.html
var templatesFS embed.FS

var legalTemplate = template.Must(template.New("legal.html").Funcs(template.FuncMap{
	// o armazenamento só aceita data:image/, mas valores antigos podem não ser imagem
	"dataURL": func(s string) template.URL {
		if strings.HasPrefix(s, "data:image/") {
			return template.URL(s)
		}
		return ""
	},
}).ParseFS(templatesFS, "templates/legal.html"))

// LegalHandler páginas de política de privacidade e termos de uso, e dados institucionais.
type LegalHandler struct {
	svc *legal.Service
	pdf legal.PDFRenderer
	log zerolog.Logger
}

// NewLegalHandler constrói o handler. pdf pode ser nil (rotas .pdf respondem 404).
func NewLegalHandler(svc *legal.Service, pdf legal.PDFRenderer, log zerolog.Logger) *LegalHandler {
	return &LegalHandler{svc: svc, pdf: pdf, log: log}
}

// Page devolve um handler que renderiza o documento slug em HTML.
func (h *LegalHandler) Page(slug string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := h.svc.Document(slug)
		if err != nil {
			return writeError(c, err)
		}
		var buf bytes.Buffer
		if err := legalTemplate.Execute(&buf, doc); err != nil {
			h.log.Error().Err(err).Str("slug", slug).Msg("renderizar página legal")
			return writeError(c, err)
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	}
}

// PDF devolve um handler que gera o documento slug em PDF.
func (h *LegalHandler) PDF(slug string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if h.pdf == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		doc, err := h.svc.Document(slug)
		if err != nil {
			return writeError(c, err)
		}
		out, err := h.pdf.RenderPDF(c.UserContext(), doc)
		if err != nil {
			h.log.Error().Err(err).Str("slug", slug).Msg("gerar PDF legal")
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="`+slug+`.pdf"`)
		return c.Send(out)
	}
}

// Institutional godoc
// @Summary      Dados do rodapé institucional
// @Tags         institutional
// @Produce      json
// @Success      200  {object}  legal.Footer
// @Router       /api/institutional [get]
func (h *LegalHandler) Institutional(c *fiber.Ctx) error {
	return c.JSON(h.svc.Footer())
}
