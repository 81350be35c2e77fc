package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/webytehub/ploutosledger-api/internal/application/dto"
	"github.com/webytehub/ploutosledger-api/internal/application/lookup"
)

// LookupHandler consultas de CEP e CNPJ em serviços públicos.
type LookupHandler struct {
	svc *lookup.Service
}

// NewLookupHandler constrói o handler.
func NewLookupHandler(svc *lookup.Service) *LookupHandler {
	return &LookupHandler{svc: svc}
}

// Address godoc
// @Summary      Consultar endereço por CEP
// @Tags         lookup
// @Produce      json
// @Param        cep  path  string  true  "CEP com ou sem máscara"
// @Success      200  {object}  entity.Address
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lookup/cep/{cep} [get]
func (h *LookupHandler) Address(c *fiber.Ctx) error {
	addr, ok := h.svc.FindAddress(c.UserContext(), pathParam(c, "cep"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "CEP não encontrado"})
	}
	return c.JSON(addr)
}

// Company godoc
// @Summary      Consultar empresa por CNPJ
// @Tags         lookup
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ com ou sem máscara"
// @Success      200   {object}  entity.CompanyRecord
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lookup/cnpj/{cnpj} [get]
func (h *LookupHandler) Company(c *fiber.Ctx) error {
	rec, ok := h.svc.FindCompany(c.UserContext(), pathParam(c, "cnpj"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "CNPJ não encontrado"})
	}
	return c.JSON(rec)
}
