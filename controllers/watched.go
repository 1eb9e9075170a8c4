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

// ListWatched returns the authenticated user's own watched entries.
// Asking for any other user's id is forbidden.
func ListWatched(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "user_id")
		if !ok {
			return
		}

		if userID != c.GetUint(middlewares.ContextUserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid user id. You are not authorized to access this information."})
			return
		}

		var watched []models.Watched
		if err := db.Where("user_id = ?", userID).Find(&watched).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		if len(watched) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "You have not reviewed any movies."})
			return
		}
		c.JSON(http.StatusOK, watched)
	}
}

// MovieAverageRating reports the mean rating for a movie, rounded to
// two decimals. Public.
func MovieAverageRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := parseID(c, "movie_id")
		if !ok {
			return
		}

		var average sql.NullFloat64
		err := db.Model(&models.Watched{}).
			Where("movie_id = ?", movieID).
			Select("AVG(rating)").
			Scan(&average).Error
		if err != nil {
			dbError(c, err, "rating")
			return
		}

		if !average.Valid {
			c.JSON(http.StatusOK, gin.H{"message": "No rating available for this movie id."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"movie_id":       movieID,
			"average_rating": math.Round(average.Float64*100) / 100,
		})
	}
}

// AddWatched records the caller's rating for a movie.
func AddWatched(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			MovieID uint `json:"movie_id" binding:"required"`
			Rating  int  `json:"rating" binding:"required,min=1,max=10"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. rating must be between 1 and 10."})
			return
		}

		if err := db.First(&models.Movie{}, input.MovieID).Error; err != nil {
			dbError(c, err, "movie")
			return
		}

		watched := models.Watched{
			Rating:  input.Rating,
			MovieID: input.MovieID,
			UserID:  c.GetUint(middlewares.ContextUserID),
		}
		if err := db.Create(&watched).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": watched.ID, "message": "You have added a review."})
	}
}

// UpdateWatched changes the rating on one of the caller's own reviews.
func UpdateWatched(db *gorm.DB) gin.HandlerFunc {
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

		var watched models.Watched
		if err := db.First(&watched, id).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		if watched.UserID != c.GetUint(middlewares.ContextUserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to change this record."})
			return
		}

		watched.Rating = input.Rating
		if err := db.Save(&watched).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated your rating for this movie."})
	}
}

// DeleteWatched removes a review. The owner or an admin may delete it.
func DeleteWatched(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var watched models.Watched
		if err := db.First(&watched, id).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		if watched.UserID != c.GetUint(middlewares.ContextUserID) && !c.GetBool(middlewares.ContextIsAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to change this record."})
			return
		}

		if err := db.Delete(&watched).Error; err != nil {
			dbError(c, err, "review")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully deleted your review for this movie."})
	}
}
