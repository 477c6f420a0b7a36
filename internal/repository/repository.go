package repository

import "gorm.io/gorm"

// Repository aggregates all repositories.
type Repository struct {
	User       UserRepository
	Student    StudentRepository
	Attendance AttendanceRepository
}

// NewRepository wires the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Student:    NewStudentRepo(db),
		Attendance: NewAttendanceRepo(db),
	}
}
