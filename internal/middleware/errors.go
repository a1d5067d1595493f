package middleware

import (
	"net/http"

	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
	"github.com/BavyaVasu/leave-management/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token expired",
		http.StatusUnauthorized,
	)
	ErrTooManyRequests = apperror.New(
		apperror.CodeTooManyRequests,
		"too many requests",
		http.StatusTooManyRequests,
	)
	ErrRequestInProgress = apperror.New(
		apperror.CodeConflict,
		"a request with this idempotency key is still being processed",
		http.StatusConflict,
	)
)

func abort(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message, err.Details)
}
