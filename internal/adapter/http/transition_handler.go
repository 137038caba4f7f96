package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/usecase/transition"
)

type TransitionHandler struct{ uc *transition.Usecase }

func NewTransitionHandler(uc *transition.Usecase) *TransitionHandler {
	return &TransitionHandler{uc: uc}
}

type transitionReq struct {
	ToStatus string         `json:"to_status" validate:"required,loanstatus"`
	Reason   string         `json:"reason"`
	Metadata map[string]any `json:"metadata"`
}

func (h *TransitionHandler) Transition(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Transition(c.Request().Context(), transition.TransitionInput{
		LoanID:   loanID,
		ToStatus: loanDomain.Status(req.ToStatus),
		ActorID:  actorID(c),
		Reason:   req.Reason,
		Metadata: req.Metadata,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TransitionHandler) AvailableTransitions(c echo.Context) error {
	dto, err := h.uc.AvailableTransitions(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
