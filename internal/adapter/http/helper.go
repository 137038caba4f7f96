package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	borrowerDomain "loanbook-backend/internal/domain/borrower"
	loanDomain "loanbook-backend/internal/domain/loan"
)

// writeDomainError maps engine errors onto HTTP codes. Guard rejections keep
// the guard's reason verbatim; storage failures stay generic.
func writeDomainError(c echo.Context, err error) error {
	var guardErr *loanDomain.GuardRejectedError
	var invalidErr *loanDomain.InvalidTransitionError

	switch {
	case errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	case errors.Is(err, borrowerDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "borrower not found"})
	case errors.As(err, &guardErr):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: guardErr.Reason})
	case errors.As(err, &invalidErr):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: invalidErr.Error()})
	case errors.Is(err, loanDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
