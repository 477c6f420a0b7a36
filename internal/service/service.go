package service

import (
	"go.uber.org/zap"

	"attendify/backend/config"
	"attendify/backend/internal/repository"
	"attendify/backend/pkg/jwt"
	"attendify/backend/pkg/redis"
)

// Service aggregates all services.
type Service struct {
	Auth       AuthService
	Student    StudentService
	Attendance AttendanceService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Student:    NewStudentService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
	}
}
