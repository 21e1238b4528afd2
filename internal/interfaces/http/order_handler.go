package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// OrderHandler alta y baja de pedidos.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOrderRequest  true  "cnpj y productos (name, quantity > 0)"
// @Success      201   {object}  dto.OrderResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !hasCnpjLength(in.CNPJ) {
		return validationError(c, "cnpj debe tener 14 caracteres")
	}
	if len(in.Products) == 0 {
		return validationError(c, "products requiere al menos un ítem")
	}
	for _, p := range in.Products {
		if p.Name == "" || !p.Quantity.IsPositive() {
			return validationError(c, "cada producto requiere name y quantity mayor que 0")
		}
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Dar de baja un pedido
// @Tags         orders
// @Security     BearerAuth
// @Param        code  path  int  true  "código del pedido"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /orders/{code} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	raw := c.Params("code")
	code, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Un código que no es número no puede existir.
		return respondError(c, domain.WithDetail(domain.ErrInexistentOrder, raw))
	}
	if err := h.uc.Exclude(c.UserContext(), GetUserID(c), code); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
