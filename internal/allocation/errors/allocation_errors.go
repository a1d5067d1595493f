package allocationerrors

import (
	"net/http"

	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
)

var (
	ErrAllocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave allocation not found",
		http.StatusNotFound,
	)
	ErrInvalidAllocationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid allocation id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period must be a calendar year",
		http.StatusBadRequest,
	)
	ErrInvalidNumberOfDays = apperror.New(
		apperror.CodeInvalidInput,
		"number_of_days must be zero or more",
		http.StatusBadRequest,
	)
	ErrAllocationConflict = apperror.New(
		apperror.CodeConflict,
		"allocations changed while generating, retry the request",
		http.StatusConflict,
	)
)
