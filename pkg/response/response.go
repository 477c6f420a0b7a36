package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the body returned on every failed request.
// Student is populated only on duplicate attendance conflicts so the
// caller can show who was already marked without a second lookup.
type ErrorBody struct {
	Error   string      `json:"error"`
	Student interface{} `json:"student,omitempty"`
}

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error writes an error body with the given status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// ErrorWithStudent writes an error body carrying the resolved student identity.
func ErrorWithStudent(c *gin.Context, httpStatus int, message string, student interface{}) {
	c.JSON(httpStatus, ErrorBody{Error: message, Student: student})
}

// ── Shortcuts ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
