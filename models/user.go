package models

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	Surname   string    `gorm:"not null" json:"surname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Admin     bool      `gorm:"default:false" json:"admin"`
	Read      []Read    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Watched   []Watched `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
