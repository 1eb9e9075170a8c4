package controllers

import (
	"net/http"

	"litverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type authorInput struct {
	PublishedName    string  `json:"published_name" binding:"required"`
	Collaboration    bool    `json:"collaboration"`
	PenName          bool    `json:"pen_name"`
	CollaboratorName *string `json:"collaborator_name"`
}

// GetAllAuthors returns every author. Public.
func GetAllAuthors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var authors []models.Author
		if err := db.Find(&authors).Error; err != nil {
			dbError(c, err, "author")
			return
		}
		c.JSON(http.StatusOK, authors)
	}
}

// SearchAuthors filters the author table by exactly one recognized query
// parameter. Public.
func SearchAuthors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Author{})

		switch {
		case c.Query("published_name") != "":
			query = query.Where("published_name = ?", c.Query("published_name"))
		case c.Query("collaboration") != "":
			query = query.Where("collaboration = ?", c.Query("collaboration") == "true")
		case c.Query("pen_name") != "":
			query = query.Where("pen_name = ?", c.Query("pen_name") == "true")
		case c.Query("collaborator_name") != "":
			query = query.Where("collaborator_name = ?", c.Query("collaborator_name"))
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recognized query parameter. Searchable fields are published_name, collaboration, pen_name and collaborator_name."})
			return
		}

		var authors []models.Author
		if err := query.Find(&authors).Error; err != nil {
			dbError(c, err, "author")
			return
		}
		c.JSON(http.StatusOK, authors)
	}
}

// GetAuthorByID returns a single author. Public.
func GetAuthorByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var author models.Author
		if err := db.First(&author, id).Error; err != nil {
			dbError(c, err, "author")
			return
		}
		c.JSON(http.StatusOK, author)
	}
}

// AddAuthor creates a new author. Admin only.
func AddAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input authorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. published_name is required."})
			return
		}

		author := models.Author{
			PublishedName:    input.PublishedName,
			Collaboration:    input.Collaboration,
			PenName:          input.PenName,
			CollaboratorName: input.CollaboratorName,
		}
		if err := db.Create(&author).Error; err != nil {
			dbError(c, err, "author")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": author.ID, "message": "You have added an author to the catalog."})
	}
}

// UpdateAuthor replaces an existing author's details. Admin only.
func UpdateAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input authorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. published_name is required."})
			return
		}

		var author models.Author
		if err := db.First(&author, id).Error; err != nil {
			dbError(c, err, "author")
			return
		}

		author.PublishedName = input.PublishedName
		author.Collaboration = input.Collaboration
		author.PenName = input.PenName
		author.CollaboratorName = input.CollaboratorName
		if err := db.Save(&author).Error; err != nil {
			dbError(c, err, "author")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated the catalog."})
	}
}

// DeleteAuthor removes an author and, by cascade, their books. Admin only.
func DeleteAuthor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var author models.Author
		if err := db.First(&author, id).Error; err != nil {
			dbError(c, err, "author")
			return
		}

		if err := db.Delete(&author).Error; err != nil {
			dbError(c, err, "author")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully removed this author from the catalog."})
	}
}
