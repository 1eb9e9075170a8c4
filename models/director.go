package models

type Director struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	DirectorName string  `gorm:"not null" json:"director_name"`
	Movies       []Movie `gorm:"foreignKey:DirectorID;constraint:OnDelete:CASCADE" json:"-"`
}
