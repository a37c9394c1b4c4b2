package handler

import (
	"tosraider/internal/delivery/http/dto"
	"tosraider/internal/usecase/analysis"

	"github.com/gofiber/fiber/v2"
)

type AnalyzeHandler struct {
	analysisUsecase *analysis.AnalysisUsecase
}

func NewAnalyzeHandler(analysisUsecase *analysis.AnalysisUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{analysisUsecase: analysisUsecase}
}

// Analyze godoc
// @Summary      Analyze a Terms-of-Service document
// @Description  Submit raw ToS text for clause-level analysis. Processes up to 10 clauses per document.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.AnalyzeRequest  true  "Document to analyze"
// @Success      200  {object}  dto.AnalyzeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/tos/analyze [post]
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	// presence of company_name and raw_text is checked inside the usecase,
	// after the quota gate, matching the pipeline's error ordering
	doc, clausesAnalyzed, err := h.analysisUsecase.AnalyzeDocument(
		c.Context(),
		userID,
		req.CompanyName,
		req.RawText,
		req.URL,
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.AnalyzeResponse{
		Status:          "success",
		DocumentID:      doc.ID,
		ClausesAnalyzed: clausesAnalyzed,
	})
}
