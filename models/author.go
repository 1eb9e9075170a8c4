package models

type Author struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	PublishedName    string  `gorm:"not null" json:"published_name"`
	Collaboration    bool    `gorm:"default:false" json:"collaboration"`
	PenName          bool    `gorm:"default:false" json:"pen_name"`
	CollaboratorName *string `json:"collaborator_name,omitempty"`
	Books            []Book  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
