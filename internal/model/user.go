package model

// User is an account row in the users table.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Role         Role   `gorm:"type:varchar(20);not null"                      json:"role"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
