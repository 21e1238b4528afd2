package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

// AuthHandler maneja alta de cuenta, login y actualización de credenciales.
type AuthHandler struct {
	uc *auth.AccountUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AccountUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Crear cuenta
// @Tags         account
// @Accept       json
// @Param        body  body  dto.RegisterRequest  true  "username (email), password"
// @Success      204
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /account/create [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !isEmail(in.Username) || in.Password == "" {
		return validationError(c, "username debe ser un email y password es requerido")
	}
	if err := h.uc.Register(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /account/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return validationError(c, "username y password son requeridos")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar credenciales
// @Description  Reautentica con username y password actuales; new_username y new_password son opcionales.
// @Tags         account
// @Accept       json
// @Param        body  body  dto.UpdateAccountRequest  true  "credenciales actuales y cambios"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /account [put]
func (h *AuthHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return validationError(c, "username y password son requeridos")
	}
	if in.NewUsername != nil && !isEmail(*in.NewUsername) {
		return validationError(c, "new_username debe ser un email")
	}
	if err := h.uc.Update(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
