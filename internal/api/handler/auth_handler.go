package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"attendify/backend/internal/dto"
	"attendify/backend/internal/service"
	"attendify/backend/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register creates an admin account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, "Invalid role")
		case errors.Is(err, service.ErrStudentRegistration):
			response.Forbidden(c, "Student accounts must be created by admin. Please contact your administrator.")
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, "Email already registered")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Login authenticates an email/password pair and issues a bearer token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, service.ErrProfileNotProvisioned):
			response.Forbidden(c, "Student profile not found. Please contact administrator to create your profile.")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout revokes the current token.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt, ok := MustGetTokenInfo(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.MessageResponse{Message: "Logged out successfully"})
}
