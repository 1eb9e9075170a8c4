package controllers

import (
	"database/sql"
	"math"
	"net/http"

	"litverse/middlewares"
	"litverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListReads returns the authenticated user's own read entries. Asking
// for any other user's id is forbidden.
func ListReads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "user_id")
		if !ok {
			return
		}

		if userID != c.GetUint(middlewares.ContextUserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid user id. You are not authorized to access this information."})
			return
		}

		var reads []models.Read
		if err := db.Where("user_id = ?", userID).Find(&reads).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		if len(reads) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "You have not reviewed any books."})
			return
		}
		c.JSON(http.StatusOK, reads)
	}
}

// BookAverageRating reports the mean rating for a book, rounded to two
// decimals. Public.
func BookAverageRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID, ok := parseID(c, "book_id")
		if !ok {
			return
		}

		var average sql.NullFloat64
		err := db.Model(&models.Read{}).
			Where("book_id = ?", bookID).
			Select("AVG(rating)").
			Scan(&average).Error
		if err != nil {
			dbError(c, err, "rating")
			return
		}

		if !average.Valid {
			c.JSON(http.StatusOK, gin.H{"message": "No rating available for this book id."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"book_id":        bookID,
			"average_rating": math.Round(average.Float64*100) / 100,
		})
	}
}

// AddRead records the caller's rating for a book.
func AddRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			BookID uint `json:"book_id" binding:"required"`
			Rating int  `json:"rating" binding:"required,min=1,max=10"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. rating must be between 1 and 10."})
			return
		}

		if err := db.First(&models.Book{}, input.BookID).Error; err != nil {
			dbError(c, err, "book")
			return
		}

		read := models.Read{
			Rating: input.Rating,
			BookID: input.BookID,
			UserID: c.GetUint(middlewares.ContextUserID),
		}
		if err := db.Create(&read).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": read.ID, "message": "You have added a review."})
	}
}

// UpdateRead changes the rating on one of the caller's own reviews.
func UpdateRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input struct {
			Rating int `json:"rating" binding:"required,min=1,max=10"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. rating must be between 1 and 10."})
			return
		}

		var read models.Read
		if err := db.First(&read, id).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		if read.UserID != c.GetUint(middlewares.ContextUserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to change this record."})
			return
		}

		read.Rating = input.Rating
		if err := db.Save(&read).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated your rating for this book."})
	}
}

// DeleteRead removes a review. The owner or an admin may delete it.
func DeleteRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var read models.Read
		if err := db.First(&read, id).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		if read.UserID != c.GetUint(middlewares.ContextUserID) && !c.GetBool(middlewares.ContextIsAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to change this record."})
			return
		}

		if err := db.Delete(&read).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully deleted your review for this book."})
	}
}
