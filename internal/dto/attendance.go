package dto

import "time"

// ── Attendance DTOs ──

// MarkAttendanceRequest marks a scanned student present for a day.
// Date is optional and defaults to today; accepted as "2006-01-02".
type MarkAttendanceRequest struct {
	QRToken string `json:"qrToken"`
	Date    string `json:"date"`
}

// MarkAttendanceResponse confirms who was marked.
type MarkAttendanceResponse struct {
	Message string         `json:"message"`
	Student StudentSummary `json:"student"`
}

// TodayRecord is one row of the day's attendance table.
type TodayRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RollNumber string    `json:"rollNumber"`
	Department string    `json:"department"`
	Section    string    `json:"section"`
	Status     string    `json:"status"`
	MarkedAt   time.Time `json:"markedAt"`
}

// AttendanceRecordItem is one entry of a student's own history.
type AttendanceRecordItem struct {
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	MarkedAt time.Time `json:"markedAt"`
}

// AttendanceSummaryResponse aggregates a student's ledger entries.
type AttendanceSummaryResponse struct {
	TotalDays   int                    `json:"totalDays"`
	PresentDays int                    `json:"presentDays"`
	AbsentDays  int                    `json:"absentDays"`
	Percentage  int                    `json:"percentage"`
	Records     []AttendanceRecordItem `json:"records"`
}
