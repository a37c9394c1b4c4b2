package handler

import (
	"tosraider/internal/delivery/http/dto"
	"tosraider/internal/usecase/usage"

	"github.com/gofiber/fiber/v2"
)

type UsageHandler struct {
	limiter *usage.Limiter
}

func NewUsageHandler(limiter *usage.Limiter) *UsageHandler {
	return &UsageHandler{limiter: limiter}
}

// Get godoc
// @Summary      Get the caller's API usage and daily limit
// @Tags         Usage
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UsageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/usage [get]
func (h *UsageHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	u, maxCalls, err := h.limiter.Status(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.UsageResponse{
		Plan:       string(u.Plan),
		CallsToday: u.CallsToday,
		MaxCalls:   maxCalls,
		LastCall:   u.LastCall,
	})
}
