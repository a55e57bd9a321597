package model

type ForumPost struct {
	BaseModel
	UserID  uint   `gorm:"not null;index" json:"userId"`
	User    *User  `json:"user,omitempty"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}
