package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-analyzer/pkg/validator"
)

var analyzeRequestMessages = map[string]string{
	"text.required": "Transcript cannot be empty",
	"text.max":      "Transcript is too long",
}

// Analysis handles transcript analysis endpoints
type Analysis struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysis.Service, logger *zap.Logger) *Analysis {
	return &Analysis{svc: svc, logger: logger}
}

// Analyze runs a transcript through the LLM and stores the result
// @Summary      Analyze a meeting transcript
// @Description  Extracts title, action items, key decisions, sentiment and summary from a transcript and stores the result
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest      true  "Transcript to analyze"
// @Success      200      {object}  dto.AnalysisResponse
// @Failure      400      {object}  common.ErrorResponse    "Transcript rejected"
// @Failure      500      {object}  common.ErrorResponse    "Provider or storage failure"
// @Router       /api/analyze [post]
func (h *Analysis) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Invalid request body").WithRaw(err))
	}
	if err := c.Validate(&req); err != nil {
		msg := validator.Message(err, analyzeRequestMessages, "Invalid transcript")
		return HandleError(h.logger, c, errors.ErrValidation(msg).WithRaw(err))
	}

	result, err := h.svc.Analyze(c.Request().Context(), req.Text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAnalysisResponse(result))
}

// GetAnalysis returns one analysis with its transcript
// @Summary      Get analysis
// @Description  Returns a stored analysis including the original transcript text
// @Tags         Analysis
// @Produce      json
// @Param        id   path      string  true  "Analysis ID (UUID)"
// @Success      200  {object}  dto.AnalysisResponse
// @Failure      404  {object}  common.ErrorResponse  "Analysis not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/analysis/{id} [get]
func (h *Analysis) GetAnalysis(c echo.Context) error {
	result, err := h.svc.GetAnalysis(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAnalysisDetailResponse(result))
}

// ListAnalyses returns the analysis history, newest first
// @Summary      List analyses
// @Description  Returns a page of stored analyses without action items or decisions
// @Tags         Analysis
// @Produce      json
// @Param        limit   query     int  false  "Page size (1-100)"  default(10)
// @Param        offset  query     int  false  "Rows to skip"       default(0)
// @Success      200     {object}  dto.ListAnalysesResponse
// @Failure      400     {object}  common.ErrorResponse  "Invalid pagination"
// @Failure      500     {object}  common.ErrorResponse
// @Router       /api/analyses [get]
func (h *Analysis) ListAnalyses(c echo.Context) error {
	limit, err := intQueryParam(c, "limit", analysis.DefaultListLimit, "Limit must be between 1 and 100")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	offset, err := intQueryParam(c, "offset", 0, "Offset must be non-negative")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.svc.ListAnalyses(c.Request().Context(), limit, offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToListAnalysesResponse(result.Analyses, result.Total))
}

// DeleteAnalysis removes an analysis with its transcript
// @Summary      Delete analysis
// @Description  Deletes an analysis together with its action items, key decisions and transcript
// @Tags         Analysis
// @Produce      json
// @Param        id   path      string  true  "Analysis ID (UUID)"
// @Success      200  {object}  dto.DeleteAnalysisResponse
// @Failure      404  {object}  common.ErrorResponse  "Analysis not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/analysis/{id} [delete]
func (h *Analysis) DeleteAnalysis(c echo.Context) error {
	if err := h.svc.DeleteAnalysis(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, dto.DeleteAnalysisResponse{
		Success: true,
		Message: "Analysis deleted successfully",
	})
}

// intQueryParam returns def when the parameter is absent and a validation error
// when it is present but not an integer.
func intQueryParam(c echo.Context, name string, def int, invalidMsg string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ErrValidation(invalidMsg).WithRaw(err)
	}
	return v, nil
}
