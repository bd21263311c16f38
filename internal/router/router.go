package router

import (
	"soclone/internal/handlers"
	"soclone/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	questionHandler := handlers.NewQuestionHandler()
	voteHandler := handlers.NewVoteHandler()
	tagHandler := handlers.NewTagHandler()
	userHandler := handlers.NewUserHandler()
	seoHandler := handlers.NewSEOHandler()

	// Public routes
	r.GET("/", questionHandler.List)              // Latest questions
	r.GET("/questions/:id", questionHandler.Detail) // Question detail, view-counted by middleware
	r.GET("/tags", tagHandler.ListTags)           // All tags
	r.GET("/u/:id", userHandler.Profile)          // Public user page

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.SitemapXml)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/ask", questionHandler.ShowCreate)
		authorized.POST("/ask", questionHandler.Create)
		authorized.POST("/questions/:id/answer", questionHandler.CreateAnswer)
		authorized.POST("/vote/:type/:id", voteHandler.Rate) // type is question or answer
	}
}
