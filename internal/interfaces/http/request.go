package http

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/webytehub/ploutosledger-api/internal/application/dto"
)

var validate = validator.New()

// parseBody lê o JSON do corpo e aplica as tags validate do DTO.
// Em caso de falha já escreve a resposta 400 e devolve ok=false.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " é obrigatório"
	case "datauri":
		return fe.Field() + " deve ser um data URI"
	default:
		return fe.Field() + " inválido (" + fe.Tag() + ")"
	}
}

// pathParam devolve o parâmetro de rota já decodificado (CNPJ com "/" chega como %2F).
func pathParam(c *fiber.Ctx, name string) string {
	v := c.Params(name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
