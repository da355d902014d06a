package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

// ResumeHandler handles HTTP requests for saving and fetching resumes.
type ResumeHandler struct {
	service ports.ResumeService
}

func NewResumeHandler(service ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// Save replaces the caller's stored resume with the submitted payload.
//
// @Summary      Save (replace) the user's resume
// @Tags         resume
// @Accept       json
// @Param        body  body      saveResumeRequest  true  "User email and resume payload"
// @Success      200   "resume stored"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /save [post]
func (h *ResumeHandler) Save(c echo.Context) error {
	var req saveResumeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Save(c.Request().Context(), req.User.Email, req.Resume); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}

	return c.NoContent(http.StatusOK)
}

// Get returns the caller's stored resume with internal identifiers stripped.
//
// @Summary      Fetch the user's resume
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        body  body      getResumeRequest  true  "User email"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /get-resume [post]
func (h *ResumeHandler) Get(c echo.Context) error {
	var req getResumeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	doc, err := h.service.Get(c.Request().Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrResumeNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "resume not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, doc)
}
