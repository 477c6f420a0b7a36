package model

import "time"

// Attendance statuses. Only "present" is ever written by the marking flow;
// "absent" exists in the schema but has no writer (see DESIGN.md).
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceRecord is one ledger entry in the attendance_records table.
// The UNIQUE (student_id, day) constraint enforces at most one record per
// student per calendar day; rows are never updated or deleted.
type AttendanceRecord struct {
	RecordID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"       json:"record_id"`
	StudentID string    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_day" json:"student_id"`
	Day       time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_day" json:"day"`
	Status    string    `gorm:"type:varchar(20);not null;default:'present'"          json:"status"`
	MarkedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                   json:"marked_at"`
	BaseModel

	// Associations
	Student *StudentProfile `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName sets the table name.
func (AttendanceRecord) TableName() string { return "attendance_records" }

// TruncateToDay normalizes a timestamp to local midnight so every scan on
// the same calendar day collides on the uniqueness key.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
