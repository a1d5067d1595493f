package leaveerrors

import (
	"net/http"

	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"requested days exceed the remaining allocation",
		http.StatusUnprocessableEntity,
	)
	ErrRequestAlreadyActioned = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been approved or rejected",
		http.StatusConflict,
	)
	ErrRequestCancelled = apperror.New(
		apperror.CodeInvalidState,
		"leave request has been cancelled",
		http.StatusConflict,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"only the requesting employee can cancel this leave request",
		http.StatusForbidden,
	)
)

// InsufficientBalance returns ErrInsufficientBalance carrying the numbers
// the caller needs to correct the request.
func InsufficientBalance(requested, remaining int) *apperror.AppError {
	return ErrInsufficientBalance.WithDetails(map[string]int{
		"requested_days": requested,
		"remaining_days": remaining,
	})
}
