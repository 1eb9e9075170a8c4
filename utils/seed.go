package utils

import (
	"log"
	"time"

	"litverse/models"

	"gorm.io/gorm"
)

// SeedCatalog loads a small starter catalog plus an admin account.
// It is a no-op when the user table already has rows.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("seed skipped: user table is not empty")
		return nil
	}

	password, err := HashPassword("Pass1234")
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName: "Connie",
		Surname:   "Jacques",
		Email:     "fakeadmin@email.com",
		Password:  password,
		Admin:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	king := models.Author{PublishedName: "Stephen King"}
	bachman := models.Author{PublishedName: "Richard Bachman", PenName: true}
	if err := db.Create(&king).Error; err != nil {
		return err
	}
	if err := db.Create(&bachman).Error; err != nil {
		return err
	}

	doubleday := models.Publisher{PublisherName: "Doubleday"}
	signet := models.Publisher{PublisherName: "Signet Books"}
	if err := db.Create(&doubleday).Error; err != nil {
		return err
	}
	if err := db.Create(&signet).Error; err != nil {
		return err
	}

	carrie := models.Book{
		Title:                "Carrie",
		ISBN:                 "0385086954",
		Length:               199,
		FirstPublicationDate: models.NewDate(1974, time.April, 5),
		CopiesPublished:      30000,
		AuthorID:             king.ID,
		PublisherID:          doubleday.ID,
	}
	books := []*models.Book{
		&carrie,
		{
			Title:                "'Salem's Lot",
			ISBN:                 "0385007515",
			Length:               439,
			FirstPublicationDate: models.NewDate(1975, time.October, 17),
			CopiesPublished:      20000,
			AuthorID:             king.ID,
			PublisherID:          doubleday.ID,
		},
		{
			Title:                "The Shining",
			ISBN:                 "0385121679",
			Length:               447,
			FirstPublicationDate: models.NewDate(1977, time.January, 28),
			CopiesPublished:      25000,
			AuthorID:             king.ID,
			PublisherID:          doubleday.ID,
		},
		{
			Title:                "Rage",
			ISBN:                 "0451076451",
			Length:               211,
			FirstPublicationDate: models.NewDate(1977, time.September, 6),
			CopiesPublished:      75000,
			AuthorID:             bachman.ID,
			PublisherID:          signet.ID,
		},
		{
			Title:                "The Stand",
			ISBN:                 "0385121687",
			Length:               823,
			FirstPublicationDate: models.NewDate(1978, time.October, 3),
			CopiesPublished:      70000,
			AuthorID:             king.ID,
			PublisherID:          doubleday.ID,
		},
	}
	for _, book := range books {
		if err := db.Create(book).Error; err != nil {
			return err
		}
	}

	dePalma := models.Director{DirectorName: "Brian De Palma"}
	if err := db.Create(&dePalma).Error; err != nil {
		return err
	}

	redBank := models.ProductionCompany{Name: "Red Bank Films"}
	if err := db.Create(&redBank).Error; err != nil {
		return err
	}

	carrieMovie := models.Movie{
		Title:               "Carrie",
		ReleaseDate:         models.NewDate(1976, time.November, 3),
		Length:              98,
		BoxOfficeRanking:    22298,
		BookID:              carrie.ID,
		DirectorID:          dePalma.ID,
		ProductionCompanyID: redBank.ID,
	}
	if err := db.Create(&carrieMovie).Error; err != nil {
		return err
	}

	if err := db.Create(&models.Read{Rating: 7, BookID: carrie.ID, UserID: admin.ID}).Error; err != nil {
		return err
	}
	if err := db.Create(&models.Watched{Rating: 7, MovieID: carrieMovie.ID, UserID: admin.ID}).Error; err != nil {
		return err
	}

	log.Println("seed data loaded")
	return nil
}
