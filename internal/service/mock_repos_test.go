package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"attendify/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by user_id and "email:"+email
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := m.users["email:"+user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	profiles map[string]*model.StudentProfile // keyed by student_id
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{profiles: make(map[string]*model.StudentProfile)}
}

func (m *mockStudentRepo) Create(_ context.Context, profile *model.StudentProfile) error {
	for _, p := range m.profiles {
		if p.RollNumber == profile.RollNumber || p.QRToken == profile.QRToken || p.UserID == profile.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if profile.StudentID == "" {
		profile.StudentID = fmt.Sprintf("student-%d", len(m.profiles)+1)
	}
	m.profiles[profile.StudentID] = profile
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.StudentProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID string) (*model.StudentProfile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByQRToken(_ context.Context, token string) (*model.StudentProfile, error) {
	for _, p := range m.profiles {
		if p.QRToken == token {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByRollNumber(_ context.Context, rollNumber string) (*model.StudentProfile, error) {
	for _, p := range m.profiles {
		if p.RollNumber == rollNumber {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.StudentProfile, error) {
	var result []model.StudentProfile
	for _, p := range m.profiles {
		result = append(result, *p)
	}
	return result, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []model.AttendanceRecord
	// failNextCreate simulates a constraint rejection the advisory state
	// never saw, i.e. a concurrent insert winning the race.
	failNextCreate error
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	if m.failNextCreate != nil {
		err := m.failNextCreate
		m.failNextCreate = nil
		return err
	}
	for _, r := range m.records {
		if r.StudentID == record.StudentID && r.Day.Equal(record.Day) {
			return gorm.ErrDuplicatedKey
		}
	}
	if record.RecordID == "" {
		record.RecordID = fmt.Sprintf("rec-%d", len(m.records)+1)
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentID string, start, end *time.Time) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.StudentID != studentID {
			continue
		}
		if start != nil && r.Day.Before(*start) {
			continue
		}
		if end != nil && r.Day.After(*end) {
			continue
		}
		result = append(result, r)
	}
	// ascending by day, matching the repository's ORDER BY
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].Day.Before(result[j-1].Day); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByDay(_ context.Context, day time.Time) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.Day.Equal(day) {
			result = append(result, r)
		}
	}
	return result, nil
}
