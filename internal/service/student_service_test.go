package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"attendify/backend/internal/dto"
	"attendify/backend/internal/model"
	"attendify/backend/internal/repository"
)

func newStudentFixture() (*repository.Repository, StudentService) {
	repo := &repository.Repository{
		User:       newMockUserRepo(),
		Student:    newMockStudentRepo(),
		Attendance: newMockAttendanceRepo(),
	}
	return repo, NewStudentService(repo, zap.NewNop())
}

func createReq(email, roll string) *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Email:      email,
		Name:       "Priya Sharma",
		RollNumber: roll,
		Department: "CSE",
		Semester:   "5",
		Section:    "A",
		Subjects:   []string{"DBMS", "Networks"},
	}
}

func TestCreateStudent_Success(t *testing.T) {
	repo, svc := newStudentFixture()

	result, err := svc.Create(context.Background(), createReq("priya@example.edu", "CSE001"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !result.Success {
		t.Error("expected success=true")
	}
	if !strings.HasPrefix(result.QRToken, "STU") {
		t.Errorf("scan token must carry the STU prefix, got %q", result.QRToken)
	}
	if result.DefaultPassword != DefaultStudentPassword {
		t.Errorf("expected the default credential to be echoed once, got %q", result.DefaultPassword)
	}
	if !strings.Contains(result.Message, "Priya Sharma") {
		t.Errorf("message should name the student, got %q", result.Message)
	}

	// account exists with the hashed default credential
	user, err := repo.User.GetByEmail(context.Background(), "priya@example.edu")
	if err != nil {
		t.Fatalf("provisioned account missing: %v", err)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("expected role student, got %q", user.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(DefaultStudentPassword)) != nil {
		t.Error("default credential does not verify against the stored hash")
	}

	// profile resolves by the generated token
	profile, err := repo.Student.GetByQRToken(context.Background(), result.QRToken)
	if err != nil {
		t.Fatalf("profile not resolvable by scan token: %v", err)
	}
	if profile.StudentID != result.ID {
		t.Errorf("token resolved to %q, expected %q", profile.StudentID, result.ID)
	}
}

func TestCreateStudent_TokensDiffer(t *testing.T) {
	_, svc := newStudentFixture()

	first, err := svc.Create(context.Background(), createReq("a@example.edu", "CSE001"))
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := svc.Create(context.Background(), createReq("b@example.edu", "CSE002"))
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	if first.QRToken == second.QRToken {
		t.Errorf("two provisioned students share a scan token: %q", first.QRToken)
	}
}

func TestCreateStudent_DuplicateEmail(t *testing.T) {
	_, svc := newStudentFixture()

	if _, err := svc.Create(context.Background(), createReq("priya@example.edu", "CSE001")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), createReq("priya@example.edu", "CSE002"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got: %v", err)
	}
}

func TestCreateStudent_DuplicateRollNumber(t *testing.T) {
	_, svc := newStudentFixture()

	if _, err := svc.Create(context.Background(), createReq("a@example.edu", "CSE001")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), createReq("b@example.edu", "CSE001"))
	if !errors.Is(err, ErrRollNumberTaken) {
		t.Errorf("expected ErrRollNumberTaken, got: %v", err)
	}
}

func TestListStudents(t *testing.T) {
	_, svc := newStudentFixture()

	if _, err := svc.Create(context.Background(), createReq("a@example.edu", "CSE001")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), createReq("b@example.edu", "CSE002")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 students, got %d", len(items))
	}
}

func TestGetIDCard(t *testing.T) {
	_, svc := newStudentFixture()

	created, err := svc.Create(context.Background(), createReq("priya@example.edu", "CSE001"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	card, err := svc.GetIDCard(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetIDCard failed: %v", err)
	}
	if !strings.HasPrefix(card.QR, "data:image/png;base64,") {
		t.Errorf("expected a PNG data URL, got prefix %q", card.QR[:min(len(card.QR), 30)])
	}
	if card.Student.RollNumber != "CSE001" {
		t.Errorf("expected roll number CSE001, got %q", card.Student.RollNumber)
	}
}

func TestGetIDCard_NotFound(t *testing.T) {
	_, svc := newStudentFixture()

	_, err := svc.GetIDCard(context.Background(), "missing-id")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got: %v", err)
	}
}
