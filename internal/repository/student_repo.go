package repository

import (
	"context"

	"gorm.io/gorm"

	"attendify/backend/internal/model"
)

// StudentRepository is the student directory data-access interface.
type StudentRepository interface {
	Create(ctx context.Context, profile *model.StudentProfile) error
	GetByID(ctx context.Context, id string) (*model.StudentProfile, error)
	GetByUserID(ctx context.Context, userID string) (*model.StudentProfile, error)
	GetByQRToken(ctx context.Context, token string) (*model.StudentProfile, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*model.StudentProfile, error)
	List(ctx context.Context) ([]model.StudentProfile, error)
}

// studentRepo is the GORM implementation of StudentRepository.
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("student_id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentRepo) GetByUserID(ctx context.Context, userID string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentRepo) GetByQRToken(ctx context.Context, token string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("qr_token = ?", token).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentRepo) GetByRollNumber(ctx context.Context, rollNumber string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Where("roll_number = ?", rollNumber).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentRepo) List(ctx context.Context) ([]model.StudentProfile, error) {
	var profiles []model.StudentProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("roll_number ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
