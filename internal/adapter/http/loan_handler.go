package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanbook-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID      string `json:"borrower_id"       validate:"omitempty,hex32"`
	PrincipalMicros int64  `json:"principal_micros"  validate:"gte=0"`
	InterestRateBps int32  `json:"interest_rate_bps" validate:"gte=0"`
	TermMonths      int32  `json:"term_months"       validate:"gte=0"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:      req.BorrowerID,
		PrincipalMicros: req.PrincipalMicros,
		InterestRateBps: req.InterestRateBps,
		TermMonths:      req.TermMonths,
		ActorID:         actorID(c),
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListEvents(c echo.Context) error {
	events, err := h.uc.Events(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"events": events})
}

// actorID identifies the caller for audit purposes; the idempotency
// middleware already validated the header on mutating routes.
func actorID(c echo.Context) string {
	return c.Request().Header.Get("X-Actor-Id")
}
