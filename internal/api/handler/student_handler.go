package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"attendify/backend/internal/dto"
	"attendify/backend/internal/service"
	"attendify/backend/pkg/response"
)

// StudentHandler serves the student self-service endpoints.
type StudentHandler struct {
	authSvc       service.AuthService
	attendanceSvc service.AttendanceService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(authSvc service.AuthService, attendanceSvc service.AttendanceService) *StudentHandler {
	return &StudentHandler{authSvc: authSvc, attendanceSvc: attendanceSvc}
}

// GetAttendance returns the caller's attendance summary and history.
// GET /api/student/attendance?startDate=&endDate=
func (h *StudentHandler) GetAttendance(c *gin.Context) {
	accountID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	start, err := parseDay(c.Query("startDate"))
	if err != nil {
		response.BadRequest(c, "Invalid startDate")
		return
	}
	end, err := parseDay(c.Query("endDate"))
	if err != nil {
		response.BadRequest(c, "Invalid endDate")
		return
	}

	result, err := h.attendanceSvc.Summary(c.Request.Context(), accountID, start, end)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "Student profile not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ChangePassword rotates the caller's own credential.
// POST /api/student/change-password
func (h *StudentHandler) ChangePassword(c *gin.Context) {
	accountID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Both current and new password are required")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), accountID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.Unauthorized(c, "Current password is incorrect")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.MessageResponse{Message: "Password updated successfully"})
}
