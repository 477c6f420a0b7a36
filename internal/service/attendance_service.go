package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"attendify/backend/internal/dto"
	"attendify/backend/internal/model"
	"attendify/backend/internal/repository"
)

var (
	ErrQRTokenRequired = errors.New("qrToken required")
	ErrInvalidQRCode   = errors.New("invalid QR code")
)

// AlreadyMarkedError signals a duplicate scan for the same calendar day. It
// carries the resolved identity summary so the caller can show who was
// already marked without a second lookup.
type AlreadyMarkedError struct {
	Student dto.StudentSummary
}

func (e *AlreadyMarkedError) Error() string {
	return "attendance already marked for today"
}

// AttendanceService is the attendance ledger business interface.
type AttendanceService interface {
	// Mark resolves a scan token and appends a "present" entry for the
	// given day (default: today, truncated to local midnight).
	Mark(ctx context.Context, qrToken string, day *time.Time) (*dto.MarkAttendanceResponse, error)
	// Summary aggregates the ledger of the student linked to accountID
	// over an optional inclusive day range.
	Summary(ctx context.Context, accountID string, start, end *time.Time) (*dto.AttendanceSummaryResponse, error)
	Today(ctx context.Context, day time.Time) ([]dto.TodayRecord, error)
	ExportDay(ctx context.Context, day time.Time) (*bytes.Buffer, string, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func summaryOf(p *model.StudentProfile) dto.StudentSummary {
	s := dto.StudentSummary{
		RollNumber: p.RollNumber,
		Department: p.Department,
		Semester:   p.Semester,
		Section:    p.Section,
	}
	if p.User != nil {
		s.Name = p.User.Name
	}
	return s
}

func (s *attendanceService) Mark(ctx context.Context, qrToken string, day *time.Time) (*dto.MarkAttendanceResponse, error) {
	if qrToken == "" {
		return nil, ErrQRTokenRequired
	}

	profile, err := s.repo.Student.GetByQRToken(ctx, qrToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Forged, stale and foreign tokens all land here.
			return nil, ErrInvalidQRCode
		}
		s.logger.Error("resolve scan token failed", zap.Error(err))
		return nil, err
	}
	student := summaryOf(profile)

	now := time.Now()
	when := now
	if day != nil {
		when = *day
	}

	record := &model.AttendanceRecord{
		StudentID: profile.StudentID,
		Day:       model.TruncateToDay(when),
		Status:    model.StatusPresent,
		MarkedAt:  now,
	}

	// Insert first and let the UNIQUE (student_id, day) constraint decide
	// duplicates; two concurrent scans race only on the constraint.
	if err := s.repo.Attendance.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &AlreadyMarkedError{Student: student}
		}
		s.logger.Error("append attendance record failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("attendance marked",
		zap.String("student_id", profile.StudentID),
		zap.Time("day", record.Day),
	)

	return &dto.MarkAttendanceResponse{
		Message: "Attendance marked successfully",
		Student: student,
	}, nil
}

func (s *attendanceService) Summary(ctx context.Context, accountID string, start, end *time.Time) (*dto.AttendanceSummaryResponse, error) {
	profile, err := s.repo.Student.GetByUserID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("lookup student profile failed", zap.Error(err))
		return nil, err
	}

	records, err := s.repo.Attendance.ListByStudent(ctx, profile.StudentID, start, end)
	if err != nil {
		s.logger.Error("list attendance records failed", zap.Error(err))
		return nil, err
	}

	totalDays := len(records)
	presentDays := 0
	for _, r := range records {
		if r.Status == model.StatusPresent {
			presentDays++
		}
	}

	percentage := 0
	if totalDays > 0 {
		percentage = int(math.Round(float64(presentDays) / float64(totalDays) * 100))
	}

	items := make([]dto.AttendanceRecordItem, 0, len(records))
	for _, r := range records {
		items = append(items, dto.AttendanceRecordItem{
			Date:     r.Day,
			Status:   r.Status,
			MarkedAt: r.MarkedAt,
		})
	}

	return &dto.AttendanceSummaryResponse{
		TotalDays:   totalDays,
		PresentDays: presentDays,
		AbsentDays:  totalDays - presentDays,
		Percentage:  percentage,
		Records:     items,
	}, nil
}

func (s *attendanceService) Today(ctx context.Context, day time.Time) ([]dto.TodayRecord, error) {
	records, err := s.repo.Attendance.ListByDay(ctx, model.TruncateToDay(day))
	if err != nil {
		s.logger.Error("list day attendance failed", zap.Error(err))
		return nil, err
	}

	rows := make([]dto.TodayRecord, 0, len(records))
	for _, r := range records {
		row := dto.TodayRecord{
			ID:       r.RecordID,
			Status:   r.Status,
			MarkedAt: r.MarkedAt,
		}
		if r.Student != nil {
			row.RollNumber = r.Student.RollNumber
			row.Department = r.Student.Department
			row.Section = r.Student.Section
			if r.Student.User != nil {
				row.Name = r.Student.User.Name
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportDay renders a day's attendance as an Excel sheet. The buffer is
// returned to the handler, which sets the response headers and writes it.
func (s *attendanceService) ExportDay(ctx context.Context, day time.Time) (*bytes.Buffer, string, error) {
	rows, err := s.Today(ctx, day)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Roll Number", "Name", "Department", "Section", "Status", "Marked At"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	for i, row := range rows {
		values := []interface{}{
			row.RollNumber,
			row.Name,
			row.Department,
			row.Section,
			row.Status,
			row.MarkedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, i+2), v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write attendance export failed", zap.Error(err))
		return nil, "", err
	}

	filename := "attendance-" + model.TruncateToDay(day).Format("2006-01-02") + ".xlsx"
	return buf, filename, nil
}
