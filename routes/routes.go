package routes

import (
	"net/http"
	"time"

	"litverse/controllers"
	"litverse/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.RateLimitMiddleware())

	// Security headers
	r.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	})

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Stephen King catalog API. Please refer to the README for detailed information about all available endpoints.")
	})

	// Auth routes

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register(db))
		auth.POST("/login", controllers.Login(db))

		protected := auth.Group("")
		protected.Use(middlewares.AuthMiddleware(db))
		{
			protected.GET("/user/all", middlewares.AdminOnly(), controllers.GetAllUsers(db))
			protected.GET("/user/:email", controllers.GetUser(db))
			protected.PUT("/user/update", controllers.UpdateUser(db))
			protected.PUT("/register/admin/:id", middlewares.AdminOnly(), controllers.SetAdmin(db))
			protected.DELETE("/user/unregister/:email", controllers.Unregister(db))
		}
	}

	// Catalog routes: public reads, admin-gated mutation

	adminGate := []gin.HandlerFunc{middlewares.AuthMiddleware(db), middlewares.AdminOnly()}

	books := r.Group("/books")
	{
		books.GET("/", controllers.GetAllBooks(db))
		books.GET("/search", controllers.SearchBooks(db))
		books.GET("/search/:id", controllers.GetBookByID(db))
		books.POST("/add", append(adminGate, controllers.AddBook(db))...)
		books.PUT("/update/:id", append(adminGate, controllers.UpdateBook(db))...)
		books.DELETE("/delete/:id", append(adminGate, controllers.DeleteBook(db))...)
	}

	authors := r.Group("/authors")
	{
		authors.GET("/", controllers.GetAllAuthors(db))
		authors.GET("/search", controllers.SearchAuthors(db))
		authors.GET("/search/:id", controllers.GetAuthorByID(db))
		authors.POST("/add", append(adminGate, controllers.AddAuthor(db))...)
		authors.PUT("/update/:id", append(adminGate, controllers.UpdateAuthor(db))...)
		authors.DELETE("/delete/:id", append(adminGate, controllers.DeleteAuthor(db))...)
	}

	publishers := r.Group("/publishers")
	{
		publishers.GET("/", controllers.GetAllPublishers(db))
		publishers.GET("/search", controllers.SearchPublishers(db))
		publishers.GET("/search/:id", controllers.GetPublisherByID(db))
		publishers.POST("/add", append(adminGate, controllers.AddPublisher(db))...)
		publishers.PUT("/update/:id", append(adminGate, controllers.UpdatePublisher(db))...)
		publishers.DELETE("/delete/:id", append(adminGate, controllers.DeletePublisher(db))...)
	}

	directors := r.Group("/directors")
	{
		directors.GET("/", controllers.GetAllDirectors(db))
		directors.GET("/search", controllers.SearchDirectors(db))
		directors.GET("/search/:id", controllers.GetDirectorByID(db))
		directors.POST("/add", append(adminGate, controllers.AddDirector(db))...)
		directors.PUT("/update/:id", append(adminGate, controllers.UpdateDirector(db))...)
		directors.DELETE("/delete/:id", append(adminGate, controllers.DeleteDirector(db))...)
	}

	production := r.Group("/production")
	{
		production.GET("/", controllers.GetAllProductionCompanies(db))
		production.GET("/search", controllers.SearchProductionCompanies(db))
		production.GET("/search/:id", controllers.GetProductionCompanyByID(db))
		production.POST("/add", append(adminGate, controllers.AddProductionCompany(db))...)
		production.PUT("/update/:id", append(adminGate, controllers.UpdateProductionCompany(db))...)
		production.DELETE("/delete/:id", append(adminGate, controllers.DeleteProductionCompany(db))...)
	}

	movies := r.Group("/movies")
	{
		movies.GET("/", controllers.GetAllMovies(db))
		movies.GET("/search", controllers.SearchMovies(db))
		movies.GET("/search/:id", controllers.GetMovieByID(db))
		movies.POST("/add", append(adminGate, controllers.AddMovie(db))...)
		movies.PUT("/update/:id", append(adminGate, controllers.UpdateMovie(db))...)
		movies.DELETE("/delete/:id", append(adminGate, controllers.DeleteMovie(db))...)
	}

	// Rating routes

	read := r.Group("/read")
	{
		read.GET("/rating/:book_id", controllers.BookAverageRating(db))

		protected := read.Group("")
		protected.Use(middlewares.AuthMiddleware(db))
		{
			protected.GET("/:user_id", controllers.ListReads(db))
			protected.POST("/add", controllers.AddRead(db))
			protected.PUT("/update/:id", controllers.UpdateRead(db))
			protected.DELETE("/delete/:id", controllers.DeleteRead(db))
		}
	}

	watched := r.Group("/watched")
	{
		watched.GET("/rating/:movie_id", controllers.MovieAverageRating(db))

		protected := watched.Group("")
		protected.Use(middlewares.AuthMiddleware(db))
		{
			protected.GET("/:user_id", controllers.ListWatched(db))
			protected.POST("/add", controllers.AddWatched(db))
			protected.PUT("/update/:id", controllers.UpdateWatched(db))
			protected.DELETE("/delete/:id", controllers.DeleteWatched(db))
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
