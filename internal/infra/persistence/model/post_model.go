package model

import "time"

// PostModel mirrors the 'blog_posts' table. The unique slug index is the
// authoritative guard against duplicate titles; the application-level
// pre-check only exists for a friendlier error message.
type PostModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Slug          string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Excerpt       string    `gorm:"type:varchar(300);not null"`
	Content       string    `gorm:"type:text;not null"`
	AuthorID      uint      `gorm:"not null;index"`
	CategoryID    uint      `gorm:"not null;index"`
	PublishedDate time.Time `gorm:"not null;index"`
	ReadTime      string    `gorm:"type:varchar(20);default:'5 min'"`
	ImageURL      string    `gorm:"type:text"`
	Views         int       `gorm:"not null;default:0"`
	Likes         int       `gorm:"not null;default:0"`
	Featured      bool      `gorm:"not null;default:false"`
	Status        string    `gorm:"type:varchar(20);not null;default:published;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Author   *UserModel     `gorm:"foreignKey:AuthorID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Tags     []TagModel     `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "blog_posts"
}

// PostTagModel mirrors the 'post_tags' join table. Declared explicitly so the
// repositories can manage associations with plain inserts and deletes.
type PostTagModel struct {
	PostID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (PostTagModel) TableName() string {
	return "post_tags"
}
