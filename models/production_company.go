package models

type ProductionCompany struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"not null" json:"name"`
	Movies []Movie `gorm:"foreignKey:ProductionCompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
