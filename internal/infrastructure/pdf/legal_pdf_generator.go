// Package pdf gera a versão PDF das páginas legais.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO (opcional)  │  Título do documento                    │
//	│  Última atualização + introdução                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  1. Seção                                                   │
//	│     texto                                                   │
//	│  ...                                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  © ano razão social. CNPJ.                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/webytehub/ploutosledger-api/internal/application/legal"
)

var _ legal.PDFRenderer = (*LegalPDFGenerator)(nil)

// ── Paleta ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 5, Green: 150, Blue: 105} // emerald-600
	colorText    = &props.Color{Red: 55, Green: 65, Blue: 81}
	colorGray    = &props.Color{Red: 107, Green: 114, Blue: 128}
)

// LegalPDFGenerator implementa legal.PDFRenderer com Maroto v2.
type LegalPDFGenerator struct{}

// NewLegalPDFGenerator constrói o gerador.
func NewLegalPDFGenerator() *LegalPDFGenerator { return &LegalPDFGenerator{} }

// RenderPDF gera o PDF e devolve seus bytes.
func (g *LegalPDFGenerator) RenderPDF(_ context.Context, doc *legal.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.Copyright, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddAutoRow(col.New(12).Add(text.New(doc.Intro, props.Text{Size: 8, Color: colorGray, Top: 2})))
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.4}))

	for _, s := range doc.Sections {
		m.AddRows(row.New(9).Add(col.New(12).Add(
			text.New(s.Heading(), props.Text{Style: fontstyle.Bold, Size: 12, Top: 3}),
		)))
		m.AddAutoRow(col.New(12).Add(
			text.New(s.Body, props.Text{Size: 10, Color: colorText, Top: 1, Align: align.Left}),
		))
	}

	m.AddRows(line.NewRow(8, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(doc.Copyright, props.Text{Size: 8, Align: align.Center, Color: colorGray}),
	)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow logo (quando for PNG/JPEG) e título.
func headerRow(doc *legal.Document) core.Row {
	title := text.New(doc.Title, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 4})

	img, ext, ok := decodeImageDataURL(doc.Logo)
	if !ok {
		return row.New(16).Add(col.New(12).Add(title))
	}
	return row.New(16).Add(
		col.New(2).Add(image.NewFromBytes(img, ext, props.Rect{Percent: 90, Center: true})),
		col.New(10).Add(title),
	)
}

// decodeImageDataURL extrai os bytes de um data URI base64 de imagem PNG ou JPEG.
func decodeImageDataURL(dataURL string) ([]byte, extension.Type, bool) {
	meta, payload, found := strings.Cut(dataURL, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return nil, "", false
	}
	var ext extension.Type
	switch strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64") {
	case "image/png":
		ext = extension.Png
	case "image/jpeg", "image/jpg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(b) == 0 {
		return nil, "", false
	}
	return b, ext, true
}
