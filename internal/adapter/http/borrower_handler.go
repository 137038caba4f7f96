package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loanbook-backend/internal/usecase/borrower"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type createBorrowerReq struct {
	FullName           string `json:"full_name"            validate:"required"`
	CreditScore        *int   `json:"credit_score"         validate:"omitempty,gte=300,lte=850"`
	AnnualIncomeMicros *int64 `json:"annual_income_micros" validate:"omitempty,gte=0"`
	MonthlyDebtMicros  *int64 `json:"monthly_debt_micros"  validate:"omitempty,gte=0"`
}

func (h *BorrowerHandler) CreateBorrower(c echo.Context) error {
	var req createBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), borrower.CreateBorrowerInput{
		FullName:           req.FullName,
		CreditScore:        req.CreditScore,
		AnnualIncomeMicros: req.AnnualIncomeMicros,
		MonthlyDebtMicros:  req.MonthlyDebtMicros,
	})
	if err != nil {
		if errors.Is(err, borrower.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BorrowerHandler) GetBorrower(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
