package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"attendify/backend/internal/dto"
	"attendify/backend/internal/model"
	"attendify/backend/internal/repository"
	"attendify/backend/pkg/qrcode"
)

var (
	ErrRollNumberTaken = errors.New("roll number already exists")
	ErrStudentNotFound = errors.New("student not found")
)

// DefaultStudentPassword is the credential assigned at provisioning time and
// communicated back exactly once; students are expected to change it.
const DefaultStudentPassword = "student123"

// StudentService is the student directory business interface.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error)
	List(ctx context.Context) ([]dto.StudentListItem, error)
	GetIDCard(ctx context.Context, studentID string) (*dto.IDCardResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// generateScanToken builds an opaque scan token from a base-36 millisecond
// timestamp plus a short random suffix. Uniqueness in practice comes from the
// time component; the unique index on qr_token is the final guard.
func generateScanToken() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:3])
	return "STU" + ts + suffix
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup account by email failed", zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Student.GetByRollNumber(ctx, req.RollNumber); err == nil {
		return nil, ErrRollNumberTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup profile by roll number failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultStudentPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Role:         model.RoleStudent,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("create student account failed", zap.Error(err))
		return nil, err
	}

	profile := &model.StudentProfile{
		UserID:     user.UserID,
		RollNumber: req.RollNumber,
		Department: req.Department,
		Semester:   req.Semester,
		Section:    req.Section,
		Photo:      req.Photo,
		QRToken:    generateScanToken(),
		Subjects:   req.Subjects,
	}
	if err := s.repo.Student.Create(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRollNumberTaken
		}
		s.logger.Error("create student profile failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("student provisioned",
		zap.String("student_id", profile.StudentID),
		zap.String("roll_number", profile.RollNumber),
	)

	return &dto.CreateStudentResponse{
		Success:         true,
		Message:         "Student " + req.Name + " created successfully",
		ID:              profile.StudentID,
		QRToken:         profile.QRToken,
		DefaultPassword: DefaultStudentPassword,
	}, nil
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentListItem, error) {
	profiles, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.StudentListItem, 0, len(profiles))
	for _, p := range profiles {
		item := dto.StudentListItem{
			ID:         p.StudentID,
			RollNumber: p.RollNumber,
			Department: p.Department,
			Semester:   p.Semester,
			Section:    p.Section,
		}
		if p.User != nil {
			item.Name = p.User.Name
			item.Email = p.User.Email
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *studentService) GetIDCard(ctx context.Context, studentID string) (*dto.IDCardResponse, error) {
	profile, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("lookup student failed", zap.Error(err))
		return nil, err
	}

	qr, err := qrcode.EncodeDataURL(profile.QRToken, 256)
	if err != nil {
		s.logger.Error("render qr code failed", zap.Error(err))
		return nil, err
	}

	card := dto.IDCardStudent{
		RollNumber: profile.RollNumber,
		Department: profile.Department,
		Semester:   profile.Semester,
		Section:    profile.Section,
		Photo:      profile.Photo,
	}
	if profile.User != nil {
		card.Name = profile.User.Name
		card.Email = profile.User.Email
	}

	return &dto.IDCardResponse{Student: card, QR: qr}, nil
}
