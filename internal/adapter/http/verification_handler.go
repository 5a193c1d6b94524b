package http

import (
	"errors"
	"net/http"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/usecase/verification"

	"github.com/labstack/echo/v4"
)

type VerificationHandler struct{ uc *verification.Usecase }

func NewVerificationHandler(uc *verification.Usecase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

func (h *VerificationHandler) VerifyPAN(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	dto, err := h.uc.VerifyPAN(c.Request().Context(), applicationID, actorFromHeader(c))
	if err != nil {
		return verificationErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *VerificationHandler) VerifyAadhaar(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	dto, err := h.uc.VerifyAadhaar(c.Request().Context(), applicationID, actorFromHeader(c))
	if err != nil {
		return verificationErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type livenessReq struct {
	SelfieRef string `json:"selfie_ref" validate:"required"`
}

func (h *VerificationHandler) CheckLiveness(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	var req livenessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CheckLiveness(c.Request().Context(), applicationID, actorFromHeader(c), req.SelfieRef)
	if err != nil {
		return verificationErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func verificationErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrTerminalState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
