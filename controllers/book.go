package controllers

import (
	"net/http"

	"litverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type bookInput struct {
	Title                string      `json:"title" binding:"required"`
	ISBN                 string      `json:"isbn" binding:"required"`
	Length               int         `json:"length" binding:"required,min=1"`
	FirstPublicationDate models.Date `json:"first_publication_date" binding:"required"`
	CopiesPublished      int         `json:"copies_published" binding:"required,min=1"`
	AuthorID             uint        `json:"author_id" binding:"required"`
	PublisherID          uint        `json:"publisher_id" binding:"required"`
}

type bookResponse struct {
	ID                   uint        `json:"id"`
	Title                string      `json:"title"`
	ISBN                 string      `json:"isbn"`
	Length               int         `json:"length"`
	FirstPublicationDate models.Date `json:"first_publication_date"`
	CopiesPublished      int         `json:"copies_published"`
	Author               string      `json:"author"`
	Publisher            string      `json:"publisher"`
}

func toBookResponse(b models.Book) bookResponse {
	return bookResponse{
		ID:                   b.ID,
		Title:                b.Title,
		ISBN:                 b.ISBN,
		Length:               b.Length,
		FirstPublicationDate: b.FirstPublicationDate,
		CopiesPublished:      b.CopiesPublished,
		Author:               b.Author.PublishedName,
		Publisher:            b.Publisher.PublisherName,
	}
}

func toBookResponses(books []models.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

// GetAllBooks returns every book in the catalog. Public.
func GetAllBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var books []models.Book
		if err := db.Preload("Author").Preload("Publisher").Find(&books).Error; err != nil {
			dbError(c, err, "book")
			return
		}
		c.JSON(http.StatusOK, toBookResponses(books))
	}
}

// SearchBooks filters the book table by exactly one recognized query
// parameter. Public.
func SearchBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Author").Preload("Publisher")

		switch {
		case c.Query("title") != "":
			query = query.Where("title = ?", c.Query("title"))
		case c.Query("isbn") != "":
			query = query.Where("isbn = ?", c.Query("isbn"))
		case c.Query("length") != "":
			length, ok := intQuery(c, "length")
			if !ok {
				return
			}
			query = query.Where("length = ?", length)
		case c.Query("author_id") != "":
			authorID, ok := intQuery(c, "author_id")
			if !ok {
				return
			}
			query = query.Where("author_id = ?", authorID)
		case c.Query("publisher_id") != "":
			publisherID, ok := intQuery(c, "publisher_id")
			if !ok {
				return
			}
			query = query.Where("publisher_id = ?", publisherID)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recognized query parameter. Searchable fields are title, isbn, length, author_id and publisher_id."})
			return
		}

		var books []models.Book
		if err := query.Find(&books).Error; err != nil {
			dbError(c, err, "book")
			return
		}
		c.JSON(http.StatusOK, toBookResponses(books))
	}
}

// GetBookByID returns a single book. Public.
func GetBookByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var book models.Book
		if err := db.Preload("Author").Preload("Publisher").First(&book, id).Error; err != nil {
			dbError(c, err, "book")
			return
		}
		c.JSON(http.StatusOK, toBookResponse(book))
	}
}

// AddBook creates a new book. Admin only; the author and publisher must
// already exist.
func AddBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input bookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. Dates must be formatted as DD-MM-YYYY."})
			return
		}

		if err := db.First(&models.Author{}, input.AuthorID).Error; err != nil {
			dbError(c, err, "author")
			return
		}
		if err := db.First(&models.Publisher{}, input.PublisherID).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}

		book := models.Book{
			Title:                input.Title,
			ISBN:                 input.ISBN,
			Length:               input.Length,
			FirstPublicationDate: input.FirstPublicationDate,
			CopiesPublished:      input.CopiesPublished,
			AuthorID:             input.AuthorID,
			PublisherID:          input.PublisherID,
		}
		if err := db.Create(&book).Error; err != nil {
			dbError(c, err, "book")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": book.ID, "message": "You have added a book to the catalog."})
	}
}

// UpdateBook replaces an existing book's details. Admin only.
func UpdateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input bookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. Dates must be formatted as DD-MM-YYYY."})
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			dbError(c, err, "book")
			return
		}

		book.Title = input.Title
		book.ISBN = input.ISBN
		book.Length = input.Length
		book.FirstPublicationDate = input.FirstPublicationDate
		book.CopiesPublished = input.CopiesPublished
		book.AuthorID = input.AuthorID
		book.PublisherID = input.PublisherID
		if err := db.Save(&book).Error; err != nil {
			dbError(c, err, "book")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated the catalog."})
	}
}

// DeleteBook removes a book. Admin only. The book's read entries and
// movie adaptation (with its watched entries) are removed by the
// database cascade.
func DeleteBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			dbError(c, err, "book")
			return
		}

		if err := db.Delete(&book).Error; err != nil {
			dbError(c, err, "book")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully removed this book from the catalog."})
	}
}
