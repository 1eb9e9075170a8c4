package models

// Read joins users to the books they have rated.
type Read struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	Rating int  `gorm:"not null" json:"rating"`
	BookID uint `gorm:"index;not null" json:"book_id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
}
