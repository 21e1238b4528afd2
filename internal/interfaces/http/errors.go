package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// Errores de negocio conocidos. Lo que no esté aquí es falla de infraestructura: 500 genérico.
var errorMappings = []errorMapping{
	{domain.ErrWeakPassword, fiber.StatusUnprocessableEntity, "WEAK_PASSWORD"},
	{domain.ErrInvalidCnpj, fiber.StatusUnprocessableEntity, "INVALID_CNPJ"},
	{domain.ErrDuplicatedUsername, fiber.StatusUnprocessableEntity, "DUPLICATED_USERNAME"},
	{domain.ErrDuplicatedCnpj, fiber.StatusUnprocessableEntity, "DUPLICATED_CNPJ"},
	{domain.ErrInexistentCnpj, fiber.StatusUnprocessableEntity, "INEXISTENT_CNPJ"},
	{domain.ErrInexistentProduct, fiber.StatusUnprocessableEntity, "INEXISTENT_PRODUCT"},
	{domain.ErrInexistentOrder, fiber.StatusUnprocessableEntity, "INEXISTENT_ORDER"},
	{domain.ErrInvalidUsernameOrPassword, fiber.StatusUnauthorized, "INVALID_USERNAME_OR_PASSWORD"},
	{domain.ErrInvalidToken, fiber.StatusUnauthorized, "INVALID_TOKEN"},
	{domain.ErrMissingCredentials, fiber.StatusUnauthorized, "MISSING_CREDENTIALS"},
	{domain.ErrMalformedHeader, fiber.StatusBadRequest, "MALFORMED_HEADER"},
}

func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m, true
		}
	}
	return errorMapping{}, false
}

// respondError traduce err a status y cuerpo. Las fallas de infraestructura se registran
// y se responden sin detalles.
func respondError(c *fiber.Ctx, err error) error {
	m, ok := lookupError(err)
	if !ok {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	log.Debug().Err(err).Str("code", m.code).Msg("petición rechazada")
	return writeError(c, m.status, err)
}

// writeError escribe el cuerpo de un error conocido con el status indicado.
func writeError(c *fiber.Ctx, status int, err error) error {
	m, _ := lookupError(err)
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:    m.code,
		Message: m.err.Error(),
		Detail:  domain.DetailOf(err),
	})
}

func validationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler para fiber.Config: errores propios de Fiber (404, 405, body demasiado grande)
// con el mismo cuerpo que el resto de la API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return respondError(c, err)
}
