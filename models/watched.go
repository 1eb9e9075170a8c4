package models

// Watched joins users to the movies they have rated.
type Watched struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	Rating  int  `gorm:"not null" json:"rating"`
	MovieID uint `gorm:"index;not null" json:"movie_id"`
	UserID  uint `gorm:"index;not null" json:"user_id"`
}
