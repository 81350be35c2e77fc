package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/application/legal"
	"github.com/webytehub/ploutosledger-api/internal/application/lookup"
	"github.com/webytehub/ploutosledger-api/internal/application/onboarding"
	"github.com/webytehub/ploutosledger-api/internal/application/segment"
	"github.com/webytehub/ploutosledger-api/internal/application/visual"
	"github.com/webytehub/ploutosledger-api/pkg/jwt"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	Lookup     *lookup.Service
	Segment    *segment.Service
	Onboarding *onboarding.Service
	Visual     *visual.Service
	Legal      *legal.Service
	LegalPDF   legal.PDFRenderer
	JWTSecret  string
	Log        zerolog.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Páginas legais (públicas)
	legalHandler := NewLegalHandler(deps.Legal, deps.LegalPDF, deps.Log)
	for _, slug := range []string{legal.SlugPrivacy, legal.SlugTerms} {
		app.Get("/"+slug, legalHandler.Page(slug))
		app.Get("/"+slug+".pdf", legalHandler.PDF(slug))
	}

	api := app.Group("/api")
	api.Get("/institutional", legalHandler.Institutional)

	// Máscaras (público); /format/validate antes de /format/:kind
	formatHandler := NewFormatHandler()
	api.Get("/format/validate", formatHandler.ValidateDocument)
	api.Get("/format/:kind", formatHandler.Format)
	api.Post("/format", formatHandler.FormatBody)
	api.Get("/unformat/:kind", formatHandler.Unformat)

	// Consultas externas (público)
	lookupHandler := NewLookupHandler(deps.Lookup)
	api.Get("/lookup/cep/:cep", lookupHandler.Address)
	api.Get("/lookup/cnpj/:cnpj", lookupHandler.Company)

	// Rotas protegidas (exigem Bearer Token)
	auth := AuthMiddleware(deps.JWTSecret)

	segments := api.Group("/segment", auth)
	segmentHandler := NewSegmentHandler(deps.Segment, deps.Log)
	segments.Get("/", segmentHandler.Get)
	segments.Get("/catalog", segmentHandler.Catalog)
	segments.Put("/", RequireRole(jwt.RoleAdmin, jwt.RoleGerente), segmentHandler.Set)
	segments.Get("/terms/:term", segmentHandler.Term)
	segments.Get("/features/:code", segmentHandler.Feature)
	segments.Get("/payment-methods", segmentHandler.PaymentMethods)

	onboardingGroup := api.Group("/onboarding", auth)
	onboardingHandler := NewOnboardingHandler(deps.Onboarding)
	onboardingGroup.Get("/", onboardingHandler.Get)
	onboardingGroup.Post("/steps/:step", onboardingHandler.CompleteStep)
	onboardingGroup.Post("/complete", onboardingHandler.Complete)

	visuals := api.Group("/visual", auth)
	visualHandler := NewVisualHandler(deps.Visual)
	visuals.Get("/", visualHandler.Get)
	visuals.Put("/logo", RequireRole(jwt.RoleAdmin, jwt.RoleGerente), visualHandler.SaveLogo)
	visuals.Put("/favicon", RequireRole(jwt.RoleAdmin, jwt.RoleGerente), visualHandler.SaveFavicon)
}
