package dto

// ── Student directory DTOs ──

// CreateStudentRequest provisions a student account plus profile.
type CreateStudentRequest struct {
	Email      string   `json:"email"      binding:"required,email"`
	Name       string   `json:"name"       binding:"required"`
	RollNumber string   `json:"rollNumber" binding:"required"`
	Department string   `json:"department" binding:"required"`
	Semester   string   `json:"semester"   binding:"required"`
	Section    string   `json:"section"    binding:"required"`
	Photo      string   `json:"photo"`
	Subjects   []string `json:"subjects"`
}

// CreateStudentResponse returns the generated scan token and the default
// credential, communicated exactly once.
type CreateStudentResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ID              string `json:"id"`
	QRToken         string `json:"qrToken"`
	DefaultPassword string `json:"defaultPassword"`
}

// StudentListItem is one row of the admin dashboard listing.
type StudentListItem struct {
	ID         string `json:"id"`
	RollNumber string `json:"rollNumber"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
	Section    string `json:"section"`
}

// StudentSummary identifies which student an action affected.
type StudentSummary struct {
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
	Section    string `json:"section"`
}

// IDCardStudent is the student block of an ID-card payload.
type IDCardStudent struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
	Section    string `json:"section"`
	Photo      string `json:"photo"`
}

// IDCardResponse carries ID-card details plus the QR image as a data URL.
type IDCardResponse struct {
	Student IDCardStudent `json:"student"`
	QR      string        `json:"qr"`
}
