package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SEOHandler serves the crawler discovery documents. Both documents are
// static: robots.txt keeps crawlers off the API and dashboard, sitemap.xml
// lists the public pages per locale.
type SEOHandler struct {
	baseURL string
	locales []string
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(baseURL string, locales []string) *SEOHandler {
	return &SEOHandler{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		locales: locales,
	}
}

// sitemapPage is one public page family in the sitemap
type sitemapPage struct {
	path       string
	changeFreq string
	priority   string
}

// Public pages listed in the sitemap, emitted once per supported locale
var sitemapPages = []sitemapPage{
	{path: "", changeFreq: "weekly", priority: "1.0"},
	{path: "/tours", changeFreq: "daily", priority: "0.9"},
	{path: "/about", changeFreq: "monthly", priority: "0.5"},
	{path: "/contact", changeFreq: "monthly", priority: "0.5"},
}

// Robots serves robots.txt
// GET /robots.txt
func (h *SEOHandler) Robots(c *gin.Context) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /dashboard\n")
	b.WriteString("Allow: /\n")
	if h.baseURL != "" {
		fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", h.baseURL)
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

// Sitemap serves sitemap.xml
// GET /sitemap.xml
func (h *SEOHandler) Sitemap(c *gin.Context) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, locale := range h.locales {
		for _, page := range sitemapPages {
			b.WriteString("  <url>\n")
			fmt.Fprintf(&b, "    <loc>%s/%s%s</loc>\n", h.baseURL, locale, page.path)
			fmt.Fprintf(&b, "    <changefreq>%s</changefreq>\n", page.changeFreq)
			fmt.Fprintf(&b, "    <priority>%s</priority>\n", page.priority)
			b.WriteString("  </url>\n")
		}
	}
	b.WriteString("</urlset>\n")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(b.String()))
}
