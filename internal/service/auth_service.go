package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"attendify/backend/config"
	"attendify/backend/internal/dto"
	"attendify/backend/internal/model"
	"attendify/backend/internal/repository"
	"attendify/backend/pkg/jwt"
	"attendify/backend/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	// ErrStudentRegistration: student accounts are provisioned by admins,
	// never self-registered.
	ErrStudentRegistration = errors.New("student accounts must be created by admin")
	// ErrProfileNotProvisioned: the credential is valid but no student
	// profile is linked to the account yet.
	ErrProfileNotProvisioned = errors.New("student profile not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrWrongPassword         = errors.New("current password is incorrect")
	ErrUserNotFound          = errors.New("user not found")
)

// AuthService is the authentication business interface.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// Register creates an admin account. Only admins may self-register; students
// are provisioned through the directory and teachers are out of scope here.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}
	if role != model.RoleAdmin {
		return nil, ErrStudentRegistration
	}

	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup account by email failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Role:         role,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("create account failed", zap.Error(err))
		return nil, err
	}

	return &dto.RegisterResponse{
		ID:    user.UserID,
		Email: user.Email,
		Role:  user.Role.String(),
		Name:  user.Name,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("lookup account failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// A student whose profile has not been provisioned yet cannot log in,
	// even with a valid credential.
	if user.Role == model.RoleStudent {
		if _, err := s.repo.Student.GetByUserID(ctx, user.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProfileNotProvisioned
			}
			s.logger.Error("lookup student profile failed", zap.Error(err))
			return nil, err
		}
	}

	token, err := s.jwtMgr.GenerateToken(user.UserID, user.Role.String(), user.Name)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			ID:    user.UserID,
			Role:  user.Role.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// Logout blacklists the token's JWT ID until its natural expiry. Without
// Redis the token simply remains valid until it expires.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("lookup account failed", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update password failed", zap.Error(err))
		return err
	}
	return nil
}
