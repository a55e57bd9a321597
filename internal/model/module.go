package model

// Module is a learning unit; quizzes hang off it.
type Module struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Content     string `gorm:"type:text" json:"content"`
	Quizzes     []Quiz `json:"quizzes,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}
