package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/application/dto"
	"github.com/webytehub/ploutosledger-api/internal/application/legal"
	"github.com/webytehub/ploutosledger-api/internal/application/lookup"
	"github.com/webytehub/ploutosledger-api/internal/application/onboarding"
	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/application/segment"
	"github.com/webytehub/ploutosledger-api/internal/application/visual"
	"github.com/webytehub/ploutosledger-api/internal/domain/repository"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/catalog"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/kvstore"
	infralookup "github.com/webytehub/ploutosledger-api/internal/infrastructure/lookup"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/metrics"
	infrapdf "github.com/webytehub/ploutosledger-api/internal/infrastructure/pdf"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/webytehub/ploutosledger-api/internal/interfaces/http"
	"github.com/webytehub/ploutosledger-api/pkg/config"
	"github.com/webytehub/ploutosledger-api/pkg/logger"
	"github.com/webytehub/ploutosledger-api/pkg/perf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicação")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET não definido")
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("conexão ao armazenamento")
	}
	defer closeStore()

	segmentCatalog, err := openCatalog(cfg.Store.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Store.CatalogFile).Msg("catálogo de segmentos")
	}

	reg := metrics.NewRegistry()

	httpClient := infralookup.NewHTTPClient(cfg.Lookup.Timeout)
	lookupSvc := lookup.NewService(
		[]ports.AddressProvider{infralookup.NewViaCEP(cfg.Lookup.ViaCEPURL, httpClient)},
		[]ports.CompanyProvider{
			infralookup.NewReceitaWS(cfg.Lookup.ReceitaWSURL, httpClient),
			infralookup.NewBrasilAPI(cfg.Lookup.BrasilAPIURL, httpClient),
		},
		log.Component("lookup"),
		lookup.WithObserver(reg),
	)

	segmentSvc := segment.NewService(segmentCatalog, store)
	onboardingSvc := onboarding.NewService(store, log.Component("onboarding"))
	visualSvc := visual.NewService(store, log.Component("visual"))

	legalSvc := legal.NewService(legal.Institutional{
		RazaoSocial: cfg.Institutional.RazaoSocial,
		CNPJ:        cfg.Institutional.CNPJ,
	})
	// páginas legais exibem logo e favicon da empresa institucional
	if id := cfg.Institutional.CompanyID; id != "" {
		visualSvc.Register(id, legalSvc)
		if err := visualSvc.Load(ctx, id); err != nil {
			log.Warn().Err(err).Str("company_id", id).Msg("identidade visual institucional indisponível")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // logos em data URI
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestMetrics(reg))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PloutosLedger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name, Store: cfg.Store.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Lookup:     lookupSvc,
		Segment:    segmentSvc,
		Onboarding: onboardingSvc,
		Visual:     visualSvc,
		Legal:      legalSvc,
		LegalPDF:   infrapdf.NewLegalPDFGenerator(),
		JWTSecret:  cfg.JWT.Secret,
		Log:        log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

// openStore conecta ao backend escolhido em STORE_DRIVER, com tentativas em intervalo fixo.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.KeyValueStore, func(), error) {
	opts := perf.RetryOptions{
		Count: cfg.Store.ConnectRetries,
		Delay: cfg.Store.RetryDelay,
		OnRetry: func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("next", next).Msg("falha ao conectar, nova tentativa")
		},
	}

	switch cfg.Store.Driver {
	case "redis":
		r, err := perf.Retry(ctx, opts, func(ctx context.Context) (*kvstore.Redis, error) {
			return kvstore.NewRedis(ctx, cfg.Redis)
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr()).Msg("Redis conectado")
		return r, func() { _ = r.Close() }, nil

	case "postgres":
		pool, err := perf.Retry(ctx, opts, func(ctx context.Context) (*pgxpool.Pool, error) {
			return postgres.NewPool(ctx, cfg.DB)
		})
		if err != nil {
			return nil, nil, err
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("PostgreSQL conectado")
		return kv, pool.Close, nil

	case "memory":
		log.Warn().Msg("armazenamento em memória: dados se perdem ao reiniciar")
		return kvstore.NewMemory(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("driver de armazenamento desconhecido: %s", cfg.Store.Driver)
	}
}

// openCatalog usa o arquivo configurado ou, sem ele, o catálogo embutido.
func openCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.NewDefault()
	}
	return catalog.LoadFile(path)
}
