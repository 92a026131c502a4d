package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/scorebook/internal/middleware"
	responses "github.com/DhavalSuthar-24/scorebook/pkg/matchresponse"
	"github.com/DhavalSuthar-24/scorebook/pkg/token"
	"github.com/DhavalSuthar-24/scorebook/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	creds  Credentials
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthController(creds Credentials, logger *slog.Logger) *AuthController {
	return &AuthController{creds: creds, logger: logger, now: time.Now}
}

// @Summary      Operator login
// @Description  Exchanges the operator's credentials for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} AuthResponse "Login successful"
// @Failure      400   {object} map[string]string "Invalid input"
// @Failure      401   {object} map[string]string "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.creds.Username)) == 1
	passOK := utils.CheckPassword(ac.creds.PasswordHash, req.Password)
	if !userOK || !passOK {
		ac.logger.Warn("operator login rejected", "username", req.Username, "ip", c.ClientIP())
		responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := ac.now()
	accessToken, err := token.GenerateJWT(ac.creds.Username, ac.creds.Secret, ac.creds.ExpiryMinutes, now)
	if err != nil {
		ac.logger.Error("could not sign access token", "error", err)
		responses.ErrorResponse(c, http.StatusInternalServerError, "Could not issue token")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   now.Add(time.Duration(ac.creds.ExpiryMinutes) * time.Minute),
		Operator:    ac.creds.Username,
	})
}

// @Summary      Current operator
// @Tags         Auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Security     BearerAuth
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	operator, err := middleware.GetOperatorFromContext(c)
	if err != nil {
		responses.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"operator": operator})
}
