package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthMiddleware verifies an HS256 token issued by the identity provider
// and puts its employee_id claim on the request context. Tokens are read
// from the Authorization header, then the access_token cookie.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abort(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, ErrTokenExpired)
				return
			}
			abort(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, ErrInvalidToken)
			return
		}

		raw, _ := claims["employee_id"].(string)
		employeeID, err := uuid.Parse(raw)
		if err != nil || employeeID == uuid.Nil {
			abort(c, ErrInvalidToken)
			return
		}

		c.Set("employee_id", employeeID.String())

		ctx := contextutil.WithEmployeeID(c.Request.Context(), employeeID)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("employee_id", employeeID.String()))
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
