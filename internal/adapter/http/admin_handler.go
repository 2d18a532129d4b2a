package http

import (
	"net/http"

	loanDomain "loanflow-backend/internal/domain/loan"
	userDomain "loanflow-backend/internal/domain/user"
	"loanflow-backend/internal/usecase/approval"
	"loanflow-backend/internal/usecase/loan"
	repaymentUC "loanflow-backend/internal/usecase/repayment"
	"loanflow-backend/internal/usecase/stats"
	"loanflow-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	loans      *loan.Usecase
	approvals  *approval.Usecase
	repayments *repaymentUC.Usecase
	stats      *stats.Usecase
	users      userDomain.Repository
}

func NewAdminHandler(loans *loan.Usecase, approvals *approval.Usecase, repayments *repaymentUC.Usecase, st *stats.Usecase, users userDomain.Repository) *AdminHandler {
	return &AdminHandler{loans: loans, approvals: approvals, repayments: repayments, stats: st, users: users}
}

func (h *AdminHandler) Stats(c echo.Context) error {
	dto, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Loans lists every application; ?status=PENDING narrows to one status.
func (h *AdminHandler) Loans(c echo.Context) error {
	status := loanDomain.Status(c.QueryParam("status"))
	switch status {
	case "", loanDomain.StatusPending, loanDomain.StatusApproved, loanDomain.StatusRejected:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status filter"})
	}
	out, err := h.loans.ListAll(c.Request().Context(), status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Customers lists CUSTOMER accounts for the admin directory.
func (h *AdminHandler) Customers(c echo.Context) error {
	users, err := h.users.ListByRole(c.Request().Context(), userDomain.RoleCustomer)
	if err != nil {
		return writeDomainError(c, err)
	}
	type customerDTO struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}
	out := make([]customerDTO, 0, len(users))
	for _, u := range users {
		out = append(out, customerDTO{UserID: u.UserID, Name: u.Name, Email: u.Email})
	}
	return c.JSON(http.StatusOK, out)
}

type decisionReq struct {
	Remark string `json:"remark"`
}

// remark is optional; accept it from the body or, failing that, the query
// string (older clients send it there).
func decisionRemark(c echo.Context) string {
	var req decisionReq
	if err := c.Bind(&req); err == nil && req.Remark != "" {
		return req.Remark
	}
	return c.QueryParam("remark")
}

func (h *AdminHandler) Approve(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !id.Valid(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.approvals.Approve(c.Request().Context(), loanID, decisionRemark(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) Reject(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !id.Valid(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.approvals.Reject(c.Request().Context(), loanID, decisionRemark(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) MarkRepaymentPaid(c echo.Context) error {
	repaymentID := c.Param("repayment_id")
	if !id.Valid(repaymentID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid repayment_id"})
	}
	dto, err := h.repayments.MarkPaid(c.Request().Context(), repaymentID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
