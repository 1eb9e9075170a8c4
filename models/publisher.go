package models

type Publisher struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	PublisherName string `gorm:"not null" json:"publisher_name"`
	Books         []Book `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE" json:"-"`
}
