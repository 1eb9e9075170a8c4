package models

type Movie struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	Title               string            `gorm:"not null" json:"title"`
	ReleaseDate         Date              `gorm:"not null" json:"release_date"`
	Length              int               `gorm:"not null" json:"length"` // minutes
	BoxOfficeRanking    int               `gorm:"not null" json:"box_office_ranking"`
	BookID              uint              `gorm:"index;not null" json:"book_id"`
	Book                Book              `json:"-"`
	DirectorID          uint              `gorm:"index;not null" json:"director_id"`
	Director            Director          `json:"-"`
	ProductionCompanyID uint              `gorm:"index;not null" json:"production_company_id"`
	ProductionCompany   ProductionCompany `json:"-"`
	Watched             []Watched         `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
}
