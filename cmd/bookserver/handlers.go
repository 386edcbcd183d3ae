package main

import (
	"errors"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamware/bookshelf/internal/auth"
	"github.com/dreamware/bookshelf/internal/catalog"
	"github.com/dreamware/bookshelf/internal/store"
)

// tokenHeader carries the login token on protected routes
const tokenHeader = "x-auth-token"

// usernameKey is the gin context key the auth middleware stores the
// resolved username under
const usernameKey = "username"

type server struct {
	store *store.Store
}

// routes builds the gin engine with all endpoints registered.
// The static segments isbn/, author/ and title/ take priority over
// the :isbn wildcard in gin's tree, so both route shapes coexist.
func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(zap.L(), true))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "online")
	})

	r.GET("/books", s.handleListBooks)
	r.GET("/books/isbn/:isbn", s.handleBookByISBN)
	r.GET("/books/author/:author", s.handleBooksByAuthor)
	r.GET("/books/title/:title", s.handleBooksByTitle)
	r.GET("/books/:isbn/review", s.handleGetReviews)

	r.POST("/register", s.handleRegister)
	r.POST("/login", s.handleLogin)

	protected := r.Group("/", s.requireToken)
	protected.POST("/books/:isbn/review", s.handleUpsertReview)
	protected.DELETE("/books/:isbn/review", s.handleDeleteReview)

	return r
}

// serverError logs a storage fault and answers 500. Business-rule
// failures never come through here.
func serverError(c *gin.Context, err error) {
	zap.S().Errorw("request failed",
		"path", c.FullPath(),
		"error", err,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}

// requireToken authenticates the x-auth-token header and stashes the
// username for the handler
func (s *server) requireToken(c *gin.Context) {
	token := c.GetHeader(tokenHeader)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
		return
	}
	users, err := s.store.LoadUsers()
	if err != nil {
		serverError(c, err)
		return
	}
	username, err := auth.Authenticate(users, token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	c.Set(usernameKey, username)
	c.Next()
}

func (s *server) handleListBooks(c *gin.Context) {
	books, err := s.store.LoadBooks()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.All(books))
}

func (s *server) handleBookByISBN(c *gin.Context) {
	books, err := s.store.LoadBooks()
	if err != nil {
		serverError(c, err)
		return
	}
	book, err := catalog.FindByISBN(books, c.Param("isbn"))
	if errors.Is(err, catalog.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *server) handleBooksByAuthor(c *gin.Context) {
	books, err := s.store.LoadBooks()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.ByAuthor(books, c.Param("author")))
}

func (s *server) handleBooksByTitle(c *gin.Context) {
	books, err := s.store.LoadBooks()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.ByTitle(books, c.Param("title")))
}

func (s *server) handleGetReviews(c *gin.Context) {
	books, err := s.store.LoadBooks()
	if err != nil {
		serverError(c, err)
		return
	}
	book, err := catalog.FindByISBN(books, c.Param("isbn"))
	if errors.Is(err, catalog.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, catalog.Reviews(book))
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	// Field presence is checked below; a missing or malformed body
	// just leaves both fields empty
	_ = c.ShouldBindJSON(&req)

	err := s.store.MutateUsers(func(users catalog.Users) error {
		return auth.Register(users, req.Username, req.Password)
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "User registered"})
	case errors.Is(err, auth.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "username & password required"})
	case errors.Is(err, auth.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
	default:
		serverError(c, err)
	}
}

func (s *server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	_ = c.ShouldBindJSON(&req)

	users, err := s.store.LoadUsers()
	if err != nil {
		serverError(c, err)
		return
	}
	token, err := auth.Login(users, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login success",
		"token":    token,
		"username": req.Username,
	})
}

type reviewRequest struct {
	Rating  *float64 `json:"rating"`
	Comment *string  `json:"comment"`
}

func (s *server) handleUpsertReview(c *gin.Context) {
	username := c.GetString(usernameKey)

	var req reviewRequest
	// An unparseable or absent body is equivalent to a review with
	// neither field
	_ = c.ShouldBindJSON(&req)

	// Body validation comes before book resolution: an empty review
	// is 400 even when the book doesn't exist
	if req.Rating == nil && req.Comment == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "rating or comment required"})
		return
	}

	var stored catalog.Review
	err := s.store.MutateBooks(func(books catalog.Books) error {
		key, err := catalog.KeyByISBN(books, c.Param("isbn"))
		if err != nil {
			return err
		}
		book := books[key]
		review, err := catalog.UpsertReview(&book, username, req.Rating, req.Comment)
		if err != nil {
			return err
		}
		books[key] = book
		stored = review
		return nil
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Review added/updated", "review": stored})
	case errors.Is(err, catalog.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
	default:
		serverError(c, err)
	}
}

func (s *server) handleDeleteReview(c *gin.Context) {
	username := c.GetString(usernameKey)

	err := s.store.MutateBooks(func(books catalog.Books) error {
		key, err := catalog.KeyByISBN(books, c.Param("isbn"))
		if err != nil {
			return err
		}
		book := books[key]
		if err := catalog.DeleteReview(&book, username); err != nil {
			return err
		}
		books[key] = book
		return nil
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	case errors.Is(err, catalog.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
	case errors.Is(err, catalog.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Review by this user not found"})
	default:
		serverError(c, err)
	}
}
