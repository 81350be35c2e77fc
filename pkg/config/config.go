package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (lida via Viper a partir do ambiente e, opcionalmente, de arquivo).
type Config struct {
	App           AppConfig
	HTTP          HTTPConfig
	JWT           JWTConfig
	Store         StoreConfig
	DB            DBConfig
	Redis         RedisConfig
	Lookup        LookupConfig
	Institutional InstitutionalConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuração de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StoreConfig escolhe o backend do armazenamento chave/valor das preferências.
type StoreConfig struct {
	Driver         string // memory, redis, postgres
	ConnectRetries int
	RetryDelay     time.Duration
	// CatalogFile YAML de segmentos; vazio usa o catálogo embutido.
	CatalogFile    string
}

// DBConfig configuração do PostgreSQL.
// Se DatabaseURL não estiver vazio, é usado como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devolve o DSN: DATABASE_URL se definido, senão o construído com DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devolve o connection string do PostgreSQL com URL encoding para caracteres especiais.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig configuração de conexão com o Redis.
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// Addr devolve host:port do Redis.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LookupConfig endereços dos serviços externos de consulta de CEP e CNPJ.
type LookupConfig struct {
	ViaCEPURL    string
	ReceitaWSURL string
	BrasilAPIURL string
	Timeout      time.Duration
}

// InstitutionalConfig dados exibidos no rodapé e nas páginas legais.
// CompanyID é a empresa cujo logo e favicon aparecem nas páginas legais; vazio usa o padrão.
type InstitutionalConfig struct {
	RazaoSocial string
	CNPJ        string
	CompanyID   string
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, JWT_SECRET, STORE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignorado se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ploutosledger-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ploutosledger"),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(getString(v, "STORE_DRIVER", "memory")),
			ConnectRetries: getInt(v, "STORE_CONNECT_RETRIES", 3),
			RetryDelay:     getDuration(v, "STORE_RETRY_DELAY", time.Second),
			CatalogFile:    getString(v, "SEGMENT_CATALOG_FILE", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "ploutosledger"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:      getString(v, "REDIS_HOST", "localhost"),
			Port:      getInt(v, "REDIS_PORT", 6379),
			Password:  getString(v, "REDIS_PASSWORD", ""),
			DB:        getInt(v, "REDIS_DB", 0),
			KeyPrefix: getString(v, "REDIS_KEY_PREFIX", "ploutos:"),
		},
		Lookup: LookupConfig{
			ViaCEPURL:    getString(v, "LOOKUP_VIACEP_URL", "https://viacep.com.br/ws"),
			ReceitaWSURL: getString(v, "LOOKUP_RECEITAWS_URL", "https://www.receitaws.com.br/v1/cnpj"),
			BrasilAPIURL: getString(v, "LOOKUP_BRASILAPI_URL", "https://brasilapi.com.br/api/cnpj/v1"),
			Timeout:      getDuration(v, "LOOKUP_TIMEOUT", 10*time.Second),
		},
		Institutional: InstitutionalConfig{
			RazaoSocial: getString(v, "INSTITUTIONAL_RAZAO_SOCIAL", "Webyte Hub"),
			CNPJ:        getString(v, "INSTITUTIONAL_CNPJ", "29.793.949/0001-78"),
			CompanyID:   getString(v, "INSTITUTIONAL_COMPANY_ID", ""),
		},
	}

	switch cfg.Store.Driver {
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("config: STORE_DRIVER inválido %q (use memory, redis ou postgres)", cfg.Store.Driver)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration aceita "10s", "1m" ou um número inteiro de segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
