package http

import (
	"errors"
	"net/http"
	"strings"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/usecase/application"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	FullName           string  `json:"full_name"            validate:"required"`
	MobileNumber       string  `json:"mobile_number"        validate:"required,inmobile"`
	PANNumber          string  `json:"pan_number"           validate:"required,pan"`
	AadhaarNumber      string  `json:"aadhaar_number"       validate:"required,aadhaar"`
	CurrentAddress     string  `json:"current_address"`
	CompanyName        string  `json:"company_name"`
	BankName           string  `json:"bank_name"            validate:"required"`
	AccountNumber      string  `json:"account_number"       validate:"required"`
	IFSCCode           string  `json:"ifsc_code"            validate:"required"`
	MonthlyIncome      float64 `json:"monthly_income"       validate:"gte=0,dec2"`
	EmploymentType     string  `json:"employment_type"      validate:"required,oneof=SALARIED SELF_EMPLOYED"`
	ResidenceType      string  `json:"residence_type"       validate:"required,oneof=OWN FAMILY RENTED"`
	EMIDeductionMethod string  `json:"emi_deduction_method" validate:"omitempty,oneof=AUTO_DEBIT UPI_MANDATE"`
	EMIDeductionDate   int     `json:"emi_deduction_date"   validate:"omitempty,gte=1,lte=28"`
}

func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), application.CreateInput(req))
	if err != nil {
		if strings.Contains(err.Error(), "already has an open draft") {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": dtos})
}

func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	dto, err := h.uc.Submit(c.Request().Context(), applicationID, actorFromHeader(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrTerminalState):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(http.StatusOK, dto)
}
