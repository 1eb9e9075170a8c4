package models

type Book struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Title                string    `gorm:"not null" json:"title"`
	ISBN                 string    `gorm:"uniqueIndex;not null" json:"isbn"`
	Length               int       `gorm:"not null" json:"length"` // pages
	FirstPublicationDate Date      `gorm:"not null" json:"first_publication_date"`
	CopiesPublished      int       `gorm:"not null" json:"copies_published"`
	AuthorID             uint      `gorm:"index;not null" json:"author_id"`
	Author               Author    `json:"-"`
	PublisherID          uint      `gorm:"index;not null" json:"publisher_id"`
	Publisher            Publisher `json:"-"`
	Read                 []Read    `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	Movie                *Movie    `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}
