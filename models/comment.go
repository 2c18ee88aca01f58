package models

// CommentDateFormat is the display format comments are stamped with,
// zero-padded day included ("August 05, 2026"). The original site stored
// this string directly, so it stays a string rather than a sortable
// timestamp.
const CommentDateFormat = "January 02, 2006"

type Comment struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CafeID   uint   `json:"cafe_id" gorm:"not null;index"`
	AuthorID uint   `json:"author_id" gorm:"not null;index"`
	Author   User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Text     string `json:"text" gorm:"not null"`
	Date     string `json:"date" gorm:"not null"`
}
