package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// dbError translates persistence failures into a uniform JSON error
// response: 404 for a missing record, 400 for unique-key and foreign-key
// violations, 500 otherwise.
func dbError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": entity + " matches an existing entry in the database"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenced record does not exist"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return uint(id), true
}

// intQuery parses a numeric query parameter, rejecting non-numeric
// values before they reach the database.
func intQuery(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number"})
		return 0, false
	}
	return n, true
}
