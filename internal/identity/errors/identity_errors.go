package identityerrors

import (
	"net/http"

	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrNotAuthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"no authenticated employee on request",
		http.StatusUnauthorized,
	)
)
