package controllers

import (
	"net/http"

	"litverse/middlewares"
	"litverse/models"
	"litverse/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type registerInput struct {
	FirstName string `json:"first_name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,len=8"`
}

// Register handles new user self-registration.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. Password must be exactly 8 characters long."})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You are already registered."})
			return
		}

		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			FirstName: input.FirstName,
			Surname:   input.Surname,
			Email:     input.Email,
			Password:  hashedPassword,
		}
		if err := db.Create(&user).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "You have successfully registered."})
	}
}

// Login verifies credentials and issues a bearer token valid for 24 hours.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if !utils.CheckPasswordHash(input.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := utils.CreateToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating access token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user.FirstName, "token": token})
	}
}

// GetAllUsers lets an admin list every registered user.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			dbError(c, err, "user")
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// GetUser returns the record matching the email in the URL. Only the
// account owner or an admin may view it.
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.Where("email = ?", c.Param("email")).First(&user).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		if user.ID != c.GetUint(middlewares.ContextUserID) && !c.GetBool(middlewares.ContextIsAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to access this information."})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateUser replaces the caller's own details.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. Password must be exactly 8 characters long."})
			return
		}

		var user models.User
		if err := db.First(&user, c.GetUint(middlewares.ContextUserID)).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user.FirstName = input.FirstName
		user.Surname = input.Surname
		user.Email = input.Email
		user.Password = hashedPassword
		if err := db.Save(&user).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated your information."})
	}
}

// SetAdmin lets an admin change another user's admin flag.
func SetAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input struct {
			Admin *bool `json:"admin" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must include the admin field"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		user.Admin = *input.Admin
		if err := db.Save(&user).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Admin privileges have changed."})
	}
}

// Unregister deletes the account matching the email in the URL. Only the
// account owner or an admin may remove it; the user's read and watched
// entries go with it.
func Unregister(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.Where("email = ?", c.Param("email")).First(&user).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		if user.ID != c.GetUint(middlewares.ContextUserID) && !c.GetBool(middlewares.ContextIsAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to remove this registration."})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			dbError(c, err, "user")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User registration has been removed."})
	}
}
