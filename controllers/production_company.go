package controllers

import (
	"net/http"

	"litverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type productionCompanyInput struct {
	Name string `json:"name" binding:"required"`
}

// GetAllProductionCompanies returns every production company. Public.
func GetAllProductionCompanies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var companies []models.ProductionCompany
		if err := db.Find(&companies).Error; err != nil {
			dbError(c, err, "production company")
			return
		}
		c.JSON(http.StatusOK, companies)
	}
}

// SearchProductionCompanies filters by name. Public.
func SearchProductionCompanies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recognized query parameter. The searchable field is name."})
			return
		}

		var companies []models.ProductionCompany
		if err := db.Where("name = ?", name).Find(&companies).Error; err != nil {
			dbError(c, err, "production company")
			return
		}
		c.JSON(http.StatusOK, companies)
	}
}

// GetProductionCompanyByID returns a single production company. Public.
func GetProductionCompanyByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var company models.ProductionCompany
		if err := db.First(&company, id).Error; err != nil {
			dbError(c, err, "production company")
			return
		}
		c.JSON(http.StatusOK, company)
	}
}

// AddProductionCompany creates a new production company. Admin only.
func AddProductionCompany(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input productionCompanyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. name is required."})
			return
		}

		company := models.ProductionCompany{Name: input.Name}
		if err := db.Create(&company).Error; err != nil {
			dbError(c, err, "production company")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": company.ID, "message": "You have added a production company to the catalog."})
	}
}

// UpdateProductionCompany replaces an existing production company's
// details. Admin only.
func UpdateProductionCompany(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input productionCompanyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. name is required."})
			return
		}

		var company models.ProductionCompany
		if err := db.First(&company, id).Error; err != nil {
			dbError(c, err, "production company")
			return
		}

		company.Name = input.Name
		if err := db.Save(&company).Error; err != nil {
			dbError(c, err, "production company")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated the catalog."})
	}
}

// DeleteProductionCompany removes a production company and, by cascade,
// its movies. Admin only.
func DeleteProductionCompany(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var company models.ProductionCompany
		if err := db.First(&company, id).Error; err != nil {
			dbError(c, err, "production company")
			return
		}

		if err := db.Delete(&company).Error; err != nil {
			dbError(c, err, "production company")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully removed this production company from the catalog."})
	}
}
