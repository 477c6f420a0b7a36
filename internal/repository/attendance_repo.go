package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"attendify/backend/internal/model"
)

// AttendanceRepository is the attendance ledger data-access interface.
// The ledger is append-only: records are never updated or deleted.
type AttendanceRepository interface {
	// Create appends a ledger entry. A second entry for the same
	// (student, day) fails with gorm.ErrDuplicatedKey; the unique
	// constraint, not the caller, decides duplicates.
	Create(ctx context.Context, record *model.AttendanceRecord) error
	ListByStudent(ctx context.Context, studentID string, start, end *time.Time) ([]model.AttendanceRecord, error)
	ListByDay(ctx context.Context, day time.Time) ([]model.AttendanceRecord, error)
}

// attendanceRepo is the GORM implementation of AttendanceRepository.
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepo) ListByStudent(ctx context.Context, studentID string, start, end *time.Time) ([]model.AttendanceRecord, error) {
	db := r.db.WithContext(ctx).
		Where("student_id = ?", studentID)
	if start != nil {
		db = db.Where("day >= ?", *start)
	}
	if end != nil {
		db = db.Where("day <= ?", *end)
	}

	var records []model.AttendanceRecord
	if err := db.Order("day ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepo) ListByDay(ctx context.Context, day time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.User").
		Where("day = ?", day).
		Order("marked_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
