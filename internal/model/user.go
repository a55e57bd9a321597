package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case Student, Teacher, Admin:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Name      string   `gorm:"size:120;not null" json:"name"`
	Email     string   `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password  string   `gorm:"size:200;not null" json:"-"`
	Role      UserRole `gorm:"size:20;default:'student'" json:"role"`
	EcoPoints int      `gorm:"default:0" json:"ecoPoints"`
}

func (User) TableName() string {
	return "users"
}
