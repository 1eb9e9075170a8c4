package controllers

import (
	"net/http"
	"time"

	"litverse/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type movieInput struct {
	Title               string      `json:"title" binding:"required"`
	ReleaseDate         models.Date `json:"release_date" binding:"required"`
	Length              int         `json:"length" binding:"required,min=1"`
	BoxOfficeRanking    int         `json:"box_office_ranking" binding:"required,min=1"`
	BookID              uint        `json:"book_id" binding:"required"`
	DirectorID          uint        `json:"director_id" binding:"required"`
	ProductionCompanyID uint        `json:"production_company_id" binding:"required"`
}

type movieResponse struct {
	ID                uint        `json:"id"`
	Title             string      `json:"title"`
	ReleaseDate       models.Date `json:"release_date"`
	Length            int         `json:"length"`
	BoxOfficeRanking  int         `json:"box_office_ranking"`
	Book              string      `json:"book"`
	Director          string      `json:"director"`
	ProductionCompany string      `json:"production_company"`
}

func toMovieResponse(m models.Movie) movieResponse {
	return movieResponse{
		ID:                m.ID,
		Title:             m.Title,
		ReleaseDate:       m.ReleaseDate,
		Length:            m.Length,
		BoxOfficeRanking:  m.BoxOfficeRanking,
		Book:              m.Book.Title,
		Director:          m.Director.DirectorName,
		ProductionCompany: m.ProductionCompany.Name,
	}
}

func toMovieResponses(movies []models.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}

func movieQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("Book").Preload("Director").Preload("ProductionCompany")
}

// GetAllMovies returns every movie in the catalog. Public.
func GetAllMovies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var movies []models.Movie
		if err := movieQuery(db).Find(&movies).Error; err != nil {
			dbError(c, err, "movie")
			return
		}
		c.JSON(http.StatusOK, toMovieResponses(movies))
	}
}

// SearchMovies filters the movie table by exactly one recognized query
// parameter. Public.
func SearchMovies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := movieQuery(db)

		switch {
		case c.Query("title") != "":
			query = query.Where("title = ?", c.Query("title"))
		case c.Query("length") != "":
			length, ok := intQuery(c, "length")
			if !ok {
				return
			}
			query = query.Where("length = ?", length)
		case c.Query("release_date") != "":
			date, err := time.Parse(models.DateLayout, c.Query("release_date"))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "release_date must be formatted as DD-MM-YYYY"})
				return
			}
			query = query.Where("release_date = ?", date)
		case c.Query("box_office_ranking") != "":
			ranking, ok := intQuery(c, "box_office_ranking")
			if !ok {
				return
			}
			query = query.Where("box_office_ranking = ?", ranking)
		case c.Query("book_id") != "":
			bookID, ok := intQuery(c, "book_id")
			if !ok {
				return
			}
			query = query.Where("book_id = ?", bookID)
		case c.Query("director_id") != "":
			directorID, ok := intQuery(c, "director_id")
			if !ok {
				return
			}
			query = query.Where("director_id = ?", directorID)
		case c.Query("production_company_id") != "":
			companyID, ok := intQuery(c, "production_company_id")
			if !ok {
				return
			}
			query = query.Where("production_company_id = ?", companyID)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recognized query parameter. Searchable fields are title, length, release_date, box_office_ranking, book_id, director_id and production_company_id."})
			return
		}

		var movies []models.Movie
		if err := query.Find(&movies).Error; err != nil {
			dbError(c, err, "movie")
			return
		}
		c.JSON(http.StatusOK, toMovieResponses(movies))
	}
}

// GetMovieByID returns a single movie. Public.
func GetMovieByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var movie models.Movie
		if err := movieQuery(db).First(&movie, id).Error; err != nil {
			dbError(c, err, "movie")
			return
		}
		c.JSON(http.StatusOK, toMovieResponse(movie))
	}
}

// AddMovie creates a new movie adaptation. Admin only; the book,
// director and production company must already exist.
func AddMovie(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input movieInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. Dates must be formatted as DD-MM-YYYY."})
			return
		}

		if err := db.First(&models.Book{}, input.BookID).Error; err != nil {
			dbError(c, err, "book")
			return
		}
		if err := db.First(&models.Director{}, input.DirectorID).Error; err != nil {
			dbError(c, err, "director")
			return
		}
		if err := db.First(&models.ProductionCompany{}, input.ProductionCompanyID).Error; err != nil {
			dbError(c, err, "production company")
			return
		}

		movie := models.Movie{
			Title:               input.Title,
			ReleaseDate:         input.ReleaseDate,
			Length:              input.Length,
			BoxOfficeRanking:    input.BoxOfficeRanking,
			BookID:              input.BookID,
			DirectorID:          input.DirectorID,
			ProductionCompanyID: input.ProductionCompanyID,
		}
		if err := db.Create(&movie).Error; err != nil {
			dbError(c, err, "movie")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": movie.ID, "message": "You have added a movie to the catalog."})
	}
}

// UpdateMovie replaces an existing movie's details. Admin only.
func UpdateMovie(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var input movieInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. Dates must be formatted as DD-MM-YYYY."})
			return
		}

		var movie models.Movie
		if err := db.First(&movie, id).Error; err != nil {
			dbError(c, err, "movie")
			return
		}

		movie.Title = input.Title
		movie.ReleaseDate = input.ReleaseDate
		movie.Length = input.Length
		movie.BoxOfficeRanking = input.BoxOfficeRanking
		movie.BookID = input.BookID
		movie.DirectorID = input.DirectorID
		movie.ProductionCompanyID = input.ProductionCompanyID
		if err := db.Save(&movie).Error; err != nil {
			dbError(c, err, "movie")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully updated the catalog."})
	}
}

// DeleteMovie removes a movie. Admin only. Its watched entries are
// removed by the database cascade.
func DeleteMovie(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var movie models.Movie
		if err := db.First(&movie, id).Error; err != nil {
			dbError(c, err, "movie")
			return
		}

		if err := db.Delete(&movie).Error; err != nil {
			dbError(c, err, "movie")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "You have successfully removed this movie from the catalog."})
	}
}
