package model

const DefaultChallengePoints = 20

type Challenge struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Points      int    `gorm:"default:20" json:"points"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// Award is the number of eco points an approved submission earns.
func (c *Challenge) Award() int {
	if c.Points <= 0 {
		return DefaultChallengePoints
	}
	return c.Points
}
