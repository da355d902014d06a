package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

// PDFHandler handles rendering resumes to PDF and fetching the result.
// Each render is scoped to its own id, so concurrent renders from different
// sessions never collide.
type PDFHandler struct {
	service ports.RenderService
}

func NewPDFHandler(service ports.RenderService) *PDFHandler {
	return &PDFHandler{service: service}
}

// Create renders the submitted resume and returns the id to fetch it with.
//
// @Summary      Render a resume to PDF
// @Tags         pdf
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RenderInput  true  "Resume payload"
// @Success      200   {object}  createPDFResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /create-pdf [post]
func (h *PDFHandler) Create(c echo.Context) error {
	var req ports.RenderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	id, err := h.service.CreatePDF(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to render resume"})
	}

	return c.JSON(http.StatusOK, createPDFResponse{RenderID: id})
}

// Fetch streams a previously rendered PDF as a download.
//
// @Summary      Download a rendered PDF
// @Tags         pdf
// @Produce      application/pdf
// @Param        id  query     string  true  "Render id returned by create-pdf"
// @Success      200 {file}    binary
// @Failure      404 {object}  errorResponse
// @Router       /fetch-pdf [get]
func (h *PDFHandler) Fetch(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "rendered resume not found"})
	}

	data, err := h.service.FetchPDF(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRenderNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "rendered resume not found"})
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="Resume.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}
