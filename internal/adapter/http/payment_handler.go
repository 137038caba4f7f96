package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loanbook-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	AmountMicros int64 `json:"amount_micros" validate:"gt=0"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Record(c.Request().Context(), payment.RecordPaymentInput{
		LoanID:       loanID,
		AmountMicros: req.AmountMicros,
		ActorID:      actorID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, payment.ErrLoanNotServicing):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return writeDomainError(c, err)
		}
	}
	return c.JSON(http.StatusCreated, dto)
}
