package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webytehub/ploutosledger-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "https://viacep.com.br/ws", cfg.Lookup.ViaCEPURL)
	assert.Equal(t, "Webyte Hub", cfg.Institutional.RazaoSocial)
	assert.Equal(t, "29.793.949/0001-78", cfg.Institutional.CNPJ)
	assert.Empty(t, cfg.Institutional.CompanyID)
	assert.Empty(t, cfg.Store.CatalogFile)
	assert.Equal(t, 10*time.Second, cfg.Lookup.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "REDIS")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOOKUP_TIMEOUT", "3s")
	t.Setenv("STORE_RETRY_DELAY", "2")
	t.Setenv("INSTITUTIONAL_COMPANY_ID", "c-inst")
	t.Setenv("SEGMENT_CATALOG_FILE", "/etc/ploutos/segments.yaml")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTP.Addr())
	assert.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Store.RetryDelay)
	assert.Equal(t, "c-inst", cfg.Institutional.CompanyID)
	assert.Equal(t, "/etc/ploutos/segments.yaml", cfg.Store.CatalogFile)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaSenha(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "ploutos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/ploutos?sslmode=disable", c.ConnectionString())
}
