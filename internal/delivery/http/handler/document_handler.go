package handler

import (
	"tosraider/internal/delivery/http/dto"
	"tosraider/internal/usecase/analysis"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	analysisUsecase *analysis.AnalysisUsecase
}

func NewDocumentHandler(analysisUsecase *analysis.AnalysisUsecase) *DocumentHandler {
	return &DocumentHandler{analysisUsecase: analysisUsecase}
}

// List godoc
// @Summary      List the caller's documents
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListDocumentsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	docs, err := h.analysisUsecase.ListDocuments(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	infos := make([]dto.DocumentInfo, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, dto.NewDocumentInfo(doc))
	}

	return c.Status(fiber.StatusOK).JSON(dto.ListDocumentsResponse{Documents: infos})
}

// GetByID godoc
// @Summary      Get a document with its clauses
// @Description  Returns the document and its clauses ordered by risk level, highest first.
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Document ID"
// @Success      200  {object}  dto.DocumentDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	documentID := c.Params("id")

	doc, clauses, err := h.analysisUsecase.GetDocument(c.Context(), documentID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.DocumentDetailResponse{
		Document: dto.NewDocumentInfo(*doc),
		RawText:  doc.RawText,
		Clauses:  clauses,
	})
}
