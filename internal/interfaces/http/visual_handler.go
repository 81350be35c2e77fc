package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/webytehub/ploutosledger-api/internal/application/dto"
	"github.com/webytehub/ploutosledger-api/internal/application/ports"
	"github.com/webytehub/ploutosledger-api/internal/application/visual"
)

// VisualHandler logo e favicon da empresa do token.
type VisualHandler struct {
	svc *visual.Service
}

// NewVisualHandler constrói o handler.
func NewVisualHandler(svc *visual.Service) *VisualHandler {
	return &VisualHandler{svc: svc}
}

// Get godoc
// @Summary      Identidade visual da empresa
// @Tags         visual
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  visual.Config
// @Router       /api/visual [get]
func (h *VisualHandler) Get(c *fiber.Ctx) error {
	return h.current(c)
}

// SaveLogo godoc
// @Summary      Gravar logo
// @Tags         visual
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.VisualRequest  true  "Imagem em data URI"
// @Success      200   {object}  visual.Config
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visual/logo [put]
func (h *VisualHandler) SaveLogo(c *fiber.Ctx) error {
	return h.save(c, h.svc.SaveLogo)
}

// SaveFavicon godoc
// @Summary      Gravar favicon
// @Tags         visual
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.VisualRequest  true  "Imagem em data URI"
// @Success      200   {object}  visual.Config
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visual/favicon [put]
func (h *VisualHandler) SaveFavicon(c *fiber.Ctx) error {
	return h.save(c, h.svc.SaveFavicon)
}

type saveFunc func(ctx context.Context, companyID, dataURL string, targets ...ports.VisualTarget) error

func (h *VisualHandler) save(c *fiber.Ctx, fn saveFunc) error {
	var in dto.VisualRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := fn(c.UserContext(), GetCompanyID(c), in.DataURL); err != nil {
		return writeError(c, err)
	}
	return h.current(c)
}

func (h *VisualHandler) current(c *fiber.Ctx) error {
	var cfg visual.Config
	if err := h.svc.Load(c.UserContext(), GetCompanyID(c), &cfg); err != nil {
		return writeError(c, err)
	}
	return c.JSON(cfg)
}
