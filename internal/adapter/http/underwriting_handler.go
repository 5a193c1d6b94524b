package http

import (
	"errors"
	"net/http"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/usecase/underwriting"

	"github.com/labstack/echo/v4"
)

type UnderwritingHandler struct{ uc *underwriting.Usecase }

func NewUnderwritingHandler(uc *underwriting.Usecase) *UnderwritingHandler {
	return &UnderwritingHandler{uc: uc}
}

type decideReq struct {
	Decision           string `json:"decision"             validate:"required,oneof=APPROVE REJECT"`
	Justification      string `json:"justification"        validate:"required"`
	ReviewerEmployeeID string `json:"reviewer_employee_id" validate:"required,hex32"`
}

func (h *UnderwritingHandler) DecideApplication(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Decide(c.Request().Context(), underwriting.DecideInput{
		ApplicationID: applicationID,
		Actor:         req.ReviewerEmployeeID,
		Justification: req.Justification,
		Decision:      underwriting.Decision(req.Decision),
	})
	if err != nil {
		// Policy refusals are conflicts, not malformed requests.
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		case errors.Is(err, domain.ErrEmptyJustification):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrVideoKycIncomplete),
			errors.Is(err, domain.ErrInvalidTransition),
			errors.Is(err, domain.ErrTerminalState):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}
	return c.JSON(http.StatusOK, dto)
}

type videoKycReq struct {
	Status          string `json:"status"            validate:"required,oneof=IN_QUEUE PENDING COMPLETED FAILED"`
	AgentEmployeeID string `json:"agent_employee_id" validate:"required,hex32"`
}

func (h *UnderwritingHandler) UpdateVideoKyc(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	var req videoKycReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.UpdateVideoKyc(c.Request().Context(), applicationID, req.AgentEmployeeID, domain.VideoKycStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		case errors.Is(err, domain.ErrTerminalState):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UnderwritingHandler) GetRecommendation(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	rec, err := h.uc.Recommendation(c.Request().Context(), applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *UnderwritingHandler) GetAuditTrail(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	trail, err := h.uc.AuditTrail(c.Request().Context(), applicationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"audit_trail": trail})
}
