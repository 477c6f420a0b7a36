package model

// StudentProfile is the per-student directory entry in the student_profiles table.
// The QR token is generated once at provisioning time and never changes.
type StudentProfile struct {
	StudentID  string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	UserID     string      `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	RollNumber string      `gorm:"type:varchar(50);not null;uniqueIndex"          json:"roll_number"`
	Department string      `gorm:"type:varchar(100);not null"                     json:"department"`
	Semester   string      `gorm:"type:varchar(20);not null"                      json:"semester"`
	Section    string      `gorm:"type:varchar(20);not null"                      json:"section"`
	Photo      string      `gorm:"type:text;not null;default:''"                  json:"photo"`
	QRToken    string      `gorm:"type:varchar(50);not null;uniqueIndex"          json:"qr_token"`
	Subjects   StringArray `gorm:"type:text[]"                                    json:"subjects"`
	BaseModel

	// Associations
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (StudentProfile) TableName() string { return "student_profiles" }
