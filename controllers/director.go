package controllers

import (
	"net/http"

	"litverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type directorInput struct {
	DirectorName string `json:"director_name" binding:"required"`
}

// GetAllDirectors returns every director. Public.
func GetAllDirectors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var directors []models.Director
		if err := db.Find(&directors).Error; err != nil {
			dbError(c, err, "director")
			return
		}
		c.JSON(http.StatusOK, directors)
	}
}

// SearchDirectors filters by director_name. Public.
func SearchDirectors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("director_name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recognized query parameter. The searchable field is director_name."})
			return
		}

		var directors []models.Director
		if err := db.Where("director_name = ?", name).Find(&directors).Error; err != nil {
			dbError(c, err, "director")
			return
		}
		c.JSON(http.StatusOK, directors)
	}
}

// GetDirectorByID returns a single director. Public.
func GetDirectorByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var director models.Director
		if err := db.First(&director, id).Error; err != nil {
			dbError(c, err, "director")
			return
		}
		c.JSON(http.StatusOK, director)
	}
}

// AddDirector creates a new director. Admin only.
func AddDirector(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input directorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. director_name is required."})
			return
		}

		director := models.Director{DirectorName: input.DirectorName}
		if err := db.Create(&director).Error; err != nil {
			dbError(c, err, "director")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": director.ID, "message": "You have added a director to the catalog."})
	}
}

// UpdateDirector replaces an existing director's details. Admin only.
func UpdateDirector(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input directorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. director_name is required."})
			return
		}

		var director models.Director
		if err := db.First(&director, id).Error; err != nil {
			dbError(c, err, "director")
			return
		}

		director.DirectorName = input.DirectorName
		if err := db.Save(&director).Error; err != nil {
			dbError(c, err, "director")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated the catalog."})
	}
}

// DeleteDirector removes a director and, by cascade, their movies. Admin only.
func DeleteDirector(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var director models.Director
		if err := db.First(&director, id).Error; err != nil {
			dbError(c, err, "director")
			return
		}

		if err := db.Delete(&director).Error; err != nil {
			dbError(c, err, "director")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully removed this director from the catalog."})
	}
}
