package handler

import "attendify/backend/internal/service"

// Handler aggregates all handlers.
type Handler struct {
	Auth    *AuthHandler
	Admin   *AdminHandler
	Student *StudentHandler
	QR      *QRHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Admin:   NewAdminHandler(svc.Student, svc.Attendance),
		Student: NewStudentHandler(svc.Auth, svc.Attendance),
		QR:      NewQRHandler(),
	}
}
