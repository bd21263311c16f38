package main

import (
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"soclone/internal/db"
	"soclone/internal/middleware"
	"soclone/internal/router"
	"soclone/internal/services"
	"soclone/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("soclone_session", store))

	// Load templates using multitemplate to allow a shared layout
	r.HTMLRender = loadTemplates("./web/templates")

	// Static assets
	r.Static("/static", "./web/static")

	// Middleware. View statistics must run after LoadUser so the resolved
	// user, not the address, identifies logged-in visitors.
	r.Use(middleware.LoadUser())
	r.Use(middleware.QuestionViews(services.NewViewService()))

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("SoClone server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble layout + view
	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, templatesDir+"/views/"+view)
		return files
	}

	funcMap := template.FuncMap{
		"timeAgo": func(t time.Time) string {
			return utils.TimeAgo(t)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"add": func(a, b int) int {
			return a + b
		},
	}

	views := []string{
		"question/list.html",
		"question/detail.html",
		"question/create.html",
		"tag/list.html",
		"auth/login.html",
		"auth/register.html",
		"user/profile.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(view)...)
	}

	return r
}
