package handler

import (
	"tosraider/internal/delivery/http/dto"
	"tosraider/internal/domain/entity"
	"tosraider/internal/usecase/action"

	"github.com/gofiber/fiber/v2"
)

type ActionHandler struct {
	actionUsecase *action.ActionUsecase
}

func NewActionHandler(actionUsecase *action.ActionUsecase) *ActionHandler {
	return &ActionHandler{actionUsecase: actionUsecase}
}

// Generate godoc
// @Summary      Generate a remediation action for a clause
// @Description  Drafts an action email plus legal references for a clause. Idempotent per (clause, action type) pair.
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.GenerateActionRequest  true  "Clause and action kind"
// @Success      200  {object}  dto.GenerateActionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/actions/generate [post]
func (h *ActionHandler) Generate(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	var req dto.GenerateActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	// action_type is a closed set; reject anything else before touching storage
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "clause_id and a valid action_type are required"})
	}

	act, err := h.actionUsecase.GenerateAction(c.Context(), userID, req.ClauseID, entity.ActionType(req.ActionType))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.GenerateActionResponse{
		Status: "success",
		Action: *act,
	})
}

// ListByClause godoc
// @Summary      List actions generated for a clause
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Clause ID"
// @Success      200  {object}  dto.ListActionsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clauses/{id}/actions [get]
func (h *ActionHandler) ListByClause(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	clauseID := c.Params("id")

	actions, err := h.actionUsecase.ListActions(c.Context(), userID, clauseID)
	if err != nil {
		return respondError(c, err)
	}

	if actions == nil {
		actions = []entity.LoopholeAction{}
	}
	return c.Status(fiber.StatusOK).JSON(dto.ListActionsResponse{Actions: actions})
}
