package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"attendify/backend/internal/dto"
	"attendify/backend/internal/service"
	"attendify/backend/pkg/response"
)

// AdminHandler serves the admin dashboard endpoints: student provisioning,
// ID cards and attendance marking.
type AdminHandler struct {
	studentSvc    service.StudentService
	attendanceSvc service.AttendanceService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(studentSvc service.StudentService, attendanceSvc service.AttendanceService) *AdminHandler {
	return &AdminHandler{studentSvc: studentSvc, attendanceSvc: attendanceSvc}
}

// ListStudents lists all students for the dashboard table.
// GET /api/admin/students
func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, students)
}

// CreateStudent provisions a student account, profile and scan token.
// POST /api/admin/students
func (h *AdminHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	result, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, "Email already registered")
		case errors.Is(err, service.ErrRollNumberTaken):
			response.Conflict(c, "Roll number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// GetIDCard returns ID-card details plus the QR image as a data URL.
// GET /api/admin/students/:id/id-card
func (h *AdminHandler) GetIDCard(c *gin.Context) {
	result, err := h.studentSvc.GetIDCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// MarkAttendance resolves a scan token and marks the student present.
// POST /api/admin/mark-attendance
func (h *AdminHandler) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "qrToken required")
		return
	}

	day, err := parseDay(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	result, err := h.attendanceSvc.Mark(c.Request.Context(), req.QRToken, day)
	if err != nil {
		var dup *service.AlreadyMarkedError
		switch {
		case errors.Is(err, service.ErrQRTokenRequired):
			response.BadRequest(c, "qrToken required")
		case errors.Is(err, service.ErrInvalidQRCode):
			response.NotFound(c, "Invalid QR code")
		case errors.As(err, &dup):
			response.ErrorWithStudent(c, http.StatusConflict, "Attendance already marked for today", dup.Student)
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// TodayAttendance returns the day's attendance table.
// GET /api/admin/attendance/today
func (h *AdminHandler) TodayAttendance(c *gin.Context) {
	day, err := parseDay(c.Query("date"))
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}
	when := time.Now()
	if day != nil {
		when = *day
	}

	records, err := h.attendanceSvc.Today(c.Request.Context(), when)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, records)
}

// ExportAttendance downloads the day's attendance as an Excel file.
// GET /api/admin/attendance/export
func (h *AdminHandler) ExportAttendance(c *gin.Context) {
	day, err := parseDay(c.Query("date"))
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}
	when := time.Now()
	if day != nil {
		when = *day
	}

	buf, filename, err := h.attendanceSvc.ExportDay(c.Request.Context(), when)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
