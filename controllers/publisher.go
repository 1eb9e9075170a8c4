package controllers

import (
	"net/http"

	"litverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type publisherInput struct {
	PublisherName string `json:"publisher_name" binding:"required"`
}

// GetAllPublishers returns every publisher. Public.
func GetAllPublishers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var publishers []models.Publisher
		if err := db.Find(&publishers).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}
		c.JSON(http.StatusOK, publishers)
	}
}

// SearchPublishers filters by publisher_name. Public.
func SearchPublishers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("publisher_name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recognized query parameter. The searchable field is publisher_name."})
			return
		}

		var publishers []models.Publisher
		if err := db.Where("publisher_name = ?", name).Find(&publishers).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}
		c.JSON(http.StatusOK, publishers)
	}
}

// GetPublisherByID returns a single publisher. Public.
func GetPublisherByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var publisher models.Publisher
		if err := db.First(&publisher, id).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}
		c.JSON(http.StatusOK, publisher)
	}
}

// AddPublisher creates a new publisher. Admin only.
func AddPublisher(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input publisherInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. publisher_name is required."})
			return
		}

		publisher := models.Publisher{PublisherName: input.PublisherName}
		if err := db.Create(&publisher).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": publisher.ID, "message": "You have added a publisher to the catalog."})
	}
}

// UpdatePublisher replaces an existing publisher's details. Admin only.
func UpdatePublisher(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input publisherInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. publisher_name is required."})
			return
		}

		var publisher models.Publisher
		if err := db.First(&publisher, id).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}

		publisher.PublisherName = input.PublisherName
		if err := db.Save(&publisher).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated the catalog."})
	}
}

// DeletePublisher removes a publisher and, by cascade, its books. Admin only.
func DeletePublisher(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var publisher models.Publisher
		if err := db.First(&publisher, id).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}

		if err := db.Delete(&publisher).Error; err != nil {
			dbError(c, err, "publisher")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully removed this publisher from the catalog."})
	}
}
