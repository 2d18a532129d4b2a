package http

import (
	"errors"
	"log"
	"net/http"

	loanDomain "loanflow-backend/internal/domain/loan"
	repaymentDomain "loanflow-backend/internal/domain/repayment"
	userDomain "loanflow-backend/internal/domain/user"
	authUC "loanflow-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps domain sentinels onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, repaymentDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrDuplicateActiveApplication),
		errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, userDomain.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, authUC.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
