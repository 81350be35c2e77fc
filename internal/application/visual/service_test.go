package visual_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webytehub/ploutosledger-api/internal/application/visual"
	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/kvstore"
)

const (
	companyID = "00000000-0000-0000-0000-000000000002"
	logoURL   = "data:image/png;base64,iVBORw0KGgo="
	iconURL   = "data:image/x-icon;base64,AAABAAEAEBA="
)

func TestLoad_SemValoresNaoAplicaNada(t *testing.T) {
	svc := visual.NewService(kvstore.NewMemory(), zerolog.Nop())

	var cfg visual.Config
	require.NoError(t, svc.Load(context.Background(), companyID, &cfg))
	assert.Empty(t, cfg.Logo)
	assert.Empty(t, cfg.Favicon)
}

func TestSaveLogoEFavicon_PersisteEAplica(t *testing.T) {
	svc := visual.NewService(kvstore.NewMemory(), zerolog.Nop())
	ctx := context.Background()

	var applied visual.Config
	require.NoError(t, svc.SaveLogo(ctx, companyID, logoURL, &applied))
	require.NoError(t, svc.SaveFavicon(ctx, companyID, iconURL, &applied))
	assert.Equal(t, logoURL, applied.Logo)
	assert.Equal(t, iconURL, applied.Favicon)

	var loaded visual.Config
	require.NoError(t, svc.Load(ctx, companyID, &loaded))
	assert.Equal(t, applied, loaded)

	var other visual.Config
	require.NoError(t, svc.Load(ctx, "outra-empresa", &other))
	assert.Empty(t, other.Logo, "valores são por empresa")
}

func TestSaveLogo_RejeitaValorQueNaoEDataURI(t *testing.T) {
	svc := visual.NewService(kvstore.NewMemory(), zerolog.Nop())

	for _, v := range []string{"", "https://example.com/logo.png", "logo.png", "data:text/plain;base64,aGVsbG8="} {
		err := svc.SaveLogo(context.Background(), companyID, v)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, v)
	}
}

func TestRegister_AlvoPermanenteRecebeAtualizacoes(t *testing.T) {
	svc := visual.NewService(kvstore.NewMemory(), zerolog.Nop())
	var pages visual.Config
	svc.Register(companyID, &pages)

	require.NoError(t, svc.SaveLogo(context.Background(), companyID, logoURL))
	assert.Equal(t, logoURL, pages.Logo)

	var otherPages visual.Config
	svc.Register("outra-empresa", &otherPages)
	require.NoError(t, svc.SaveFavicon(context.Background(), companyID, iconURL))
	assert.Empty(t, otherPages.Favicon)
}
