package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webytehub/ploutosledger-api/internal/application/legal"
)

func TestRenderPDF_GeraDocumentoValido(t *testing.T) {
	svc := legal.NewService(legal.Institutional{}).WithClock(func() time.Time {
		return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	})
	doc, err := svc.Document(legal.SlugTerms)
	require.NoError(t, err)

	out, err := NewLegalPDFGenerator().RenderPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "o conteúdo deve ser um PDF")
}

func TestDecodeImageDataURL(t *testing.T) {
	b, ext, ok := decodeImageDataURL("data:image/png;base64,iVBORw0KGgo=")
	require.True(t, ok)
	assert.Equal(t, extension.Png, ext)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, b)

	_, ext, ok = decodeImageDataURL("data:image/jpeg;base64,/9j/4A==")
	assert.True(t, ok)
	assert.Equal(t, extension.Jpg, ext)

	for _, in := range []string{"", "data:image/svg+xml;base64,PHN2Zz4=", "data:image/png,abc", "data:image/png;base64,@@@"} {
		_, _, ok := decodeImageDataURL(in)
		assert.False(t, ok, in)
	}
}
