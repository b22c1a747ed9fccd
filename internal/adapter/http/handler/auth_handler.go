package handler

import (
	"time"

	"marketing-portal/internal/adapter/http/dto"
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler serves dashboard login.
type AuthHandler struct {
	authSvc ports.AuthService
	log     zerolog.Logger
}

func NewAuthHandler(authSvc ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, log: log}
}

// Login authenticates a dashboard user and issues a session token.
//
//	POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidBody(err))
		return
	}

	token, expiresAt, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
