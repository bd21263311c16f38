package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"soclone/internal/db"
	"soclone/internal/models"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct{}

func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

func getSiteURL() string {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	return siteURL
}

func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	siteURL := getSiteURL()
	content := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /login
Disallow: /signup
Disallow: /vote/

Sitemap: %s/sitemap.xml
`, siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

func (h *SEOHandler) SitemapXml(c *gin.Context) {
	siteURL := getSiteURL()

	var questions []models.Question
	db.DB.Select("id, updated_at").Order("created_at DESC").Limit(1000).Find(&questions)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	b.WriteString(fmt.Sprintf("  <url><loc>%s/</loc></url>\n", siteURL))
	b.WriteString(fmt.Sprintf("  <url><loc>%s/tags</loc></url>\n", siteURL))
	for _, q := range questions {
		b.WriteString(fmt.Sprintf("  <url><loc>%s/questions/%d</loc><lastmod>%s</lastmod></url>\n",
			siteURL, q.ID, q.UpdatedAt.Format(time.RFC3339)))
	}
	b.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, b.String())
}
