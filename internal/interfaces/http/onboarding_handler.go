package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/webytehub/ploutosledger-api/internal/application/onboarding"
)

// OnboardingHandler modo de primeiro uso do usuário do token.
type OnboardingHandler struct {
	svc *onboarding.Service
}

// NewOnboardingHandler constrói o handler.
func NewOnboardingHandler(svc *onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// Get godoc
// @Summary      Situação do primeiro dia de uso
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  onboarding.State
// @Router       /api/onboarding [get]
func (h *OnboardingHandler) Get(c *fiber.Ctx) error {
	st, err := h.svc.State(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

// CompleteStep godoc
// @Summary      Marcar passo como concluído
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        step  path  string  true  "Identificador do passo"
// @Success      200   {object}  onboarding.State
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/onboarding/steps/{step} [post]
func (h *OnboardingHandler) CompleteStep(c *fiber.Ctx) error {
	st, err := h.svc.CompleteStep(c.UserContext(), GetUserID(c), pathParam(c, "step"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

// Complete godoc
// @Summary      Encerrar o modo de primeiro uso
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  onboarding.State
// @Router       /api/onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	st, err := h.svc.CompleteFirstDay(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}
