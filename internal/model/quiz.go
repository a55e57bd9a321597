package model

const DefaultQuizPoints = 10

type Quiz struct {
	BaseModel
	ModuleID uint   `gorm:"not null;index" json:"moduleId"`
	Question string `gorm:"type:text;not null" json:"question"`
	// Options holds the answer choices as a JSON string; the schema
	// treats it as opaque text.
	Options       string `gorm:"type:text" json:"options"`
	CorrectAnswer string `gorm:"size:200" json:"-"`
	Points        int    `gorm:"default:10" json:"points"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Award is the number of eco points a correct answer earns.
func (q *Quiz) Award() int {
	if q.Points <= 0 {
		return DefaultQuizPoints
	}
	return q.Points
}
