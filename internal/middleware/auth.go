package middleware

import (
	"errors"
	"net/http"
	"strings"

	responses "github.com/DhavalSuthar-24/scorebook/pkg/matchresponse"
	"github.com/DhavalSuthar-24/scorebook/pkg/token"
	"github.com/gin-gonic/gin"
)

const (
	AuthOperatorKey = "auth_operator"
)

// AuthMiddleware rejects requests without a valid operator bearer token.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.ErrorResponse(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(AuthOperatorKey, claims.Operator)
		c.Next()
	}
}

// GetOperatorFromContext returns the operator AuthMiddleware authenticated.
func GetOperatorFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get(AuthOperatorKey)
	if !exists {
		return "", errors.New("operator not found in context")
	}
	operator, ok := v.(string)
	if !ok || operator == "" {
		return "", errors.New("operator has unexpected type")
	}
	return operator, nil
}
