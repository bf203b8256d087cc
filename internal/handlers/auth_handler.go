package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/middleware"
)

// AuthHandler issues admin tokens for the maintenance endpoints.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// AdminLoginRequest carries the shared admin secret.
type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// TokenResponse carries an issued admin JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminLogin exchanges the admin secret for a short-lived JWT.
// @Summary     Admin login
// @Description Exchange the configured admin secret for a bearer token
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body AdminLoginRequest true "Admin secret"
// @Success     200 {object} TokenResponse "Admin token"
// @Failure     401 {object} ErrorResponse "Invalid secret"
// @Router      /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if !middleware.VerifyAdminSecret(req.Secret) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid admin secret"))
		return
	}

	token, err := middleware.GenerateAdminToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
