package leavetypeerrors

import (
	"net/http"

	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"leave type with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrNameRequired       = apperror.RequiredField("name")
	ErrInvalidDefaultDays = apperror.New(
		apperror.CodeInvalidInput,
		"default_days must be zero or more",
		http.StatusBadRequest,
	)
)
