package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Get godoc
// @Summary      Pedidos activos por empresa
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.SummaryItem
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /summary [get]
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	items, err := h.uc.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
