package http

import (
	"net/http"

	"loanflow-backend/internal/adapter/middleware"
	userDomain "loanflow-backend/internal/domain/user"
	"loanflow-backend/internal/usecase/loan"
	repaymentUC "loanflow-backend/internal/usecase/repayment"
	"loanflow-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	loans      *loan.Usecase
	repayments *repaymentUC.Usecase
}

func NewLoanHandler(loans *loan.Usecase, repayments *repaymentUC.Usecase) *LoanHandler {
	return &LoanHandler{loans: loans, repayments: repayments}
}

type applyLoanReq struct {
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	LoanType     string  `json:"loan_type"     validate:"required"`
	TenureMonths int     `json:"tenure_months" validate:"required,gt=0"`
	Purpose      string  `json:"purpose"       validate:"required"`
	AnnualIncome float64 `json:"annual_income" validate:"required,gt=0,dec2"`
}

// Apply submits a loan application for the authenticated customer. The
// interest rate is policy-fixed, never taken from the request.
func (h *LoanHandler) Apply(c echo.Context) error {
	claims := middleware.CallerClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.loans.Submit(c.Request().Context(), loan.SubmitInput{
		OwnerID:      claims.Subject,
		Amount:       req.Amount,
		LoanType:     req.LoanType,
		TenureMonths: req.TenureMonths,
		Purpose:      req.Purpose,
		AnnualIncome: req.AnnualIncome,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// MyLoans lists the authenticated customer's applications, newest first.
func (h *LoanHandler) MyLoans(c echo.Context) error {
	claims := middleware.CallerClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	out, err := h.loans.ListByOwner(c.Request().Context(), claims.Subject)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetLoan returns a single loan with its schedule. Customers may only read
// their own loans; admins may read any.
func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.authorizedLoan(c)
	if err != nil || dto == nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

// GetRepayments returns the loan's schedule, ordered by due date.
func (h *LoanHandler) GetRepayments(c echo.Context) error {
	dto, err := h.authorizedLoan(c)
	if err != nil || dto == nil {
		return err
	}
	out, err := h.repayments.ListByLoan(c.Request().Context(), dto.LoanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// authorizedLoan loads the loan from the path and enforces ownership for
// customers. A nil dto with a nil error never happens on the success path;
// on failure the response has already been written.
func (h *LoanHandler) authorizedLoan(c echo.Context) (*loan.LoanDTO, error) {
	loanID := c.Param("loan_id")
	if !id.Valid(loanID) {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	claims := middleware.CallerClaims(c)
	if claims == nil {
		return nil, c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dto, err := h.loans.GetByID(c.Request().Context(), loanID)
	if err != nil {
		return nil, writeDomainError(c, err)
	}
	if claims.Role != string(userDomain.RoleAdmin) && dto.OwnerID != claims.Subject {
		return nil, c.JSON(http.StatusForbidden, ErrorResponse{Error: "not your loan"})
	}
	return dto, nil
}
