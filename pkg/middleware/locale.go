package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tourbase/tourbase/internal/i18n"
	"github.com/tourbase/tourbase/pkg/logger"
)

// ContextKeyLocale is the gin context key holding the resolved locale
const ContextKeyLocale = "locale"

// ContextKeyBundle is the gin context key holding the locale's translation bundle
const ContextKeyBundle = "locale_bundle"

// LocaleCookieName is the cookie consulted before Accept-Language
const LocaleCookieName = "locale"

// localeSkipPrefixes are path prefixes that never get a locale prefix.
// API routes, health probes and static assets are served locale-neutral.
var localeSkipPrefixes = []string{
	"/api/",
	"/health",
	"/metrics",
	"/static/",
	"/assets/",
}

// LocaleMiddleware redirects page requests that lack a supported-locale
// first segment to the same path under the resolved locale. Requests that
// already carry a locale prefix pass through with the locale and its
// translation bundle set in the gin context.
func LocaleMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path

		if skipLocaleRouting(reqPath) {
			c.Next()
			return
		}

		if locale, ok := localePrefix(reqPath); ok {
			c.Set(ContextKeyLocale, locale)
			attachBundle(c, locale, log)
			c.Next()
			return
		}

		locale := resolveRequestLocale(c)
		c.Set(ContextKeyLocale, locale)

		target := "/" + locale + reqPath
		if c.Request.URL.RawQuery != "" {
			target += "?" + c.Request.URL.RawQuery
		}
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// attachBundle loads the locale's translation bundle into the gin context.
// A locale whose catalog is missing or malformed still serves: LookupBundle
// falls back to the baseline bundle and reports it, which is logged so a
// broken catalog shows up in operations rather than as silent English pages.
func attachBundle(c *gin.Context, locale string, log *logger.Logger) {
	res, err := i18n.LookupBundle(locale)
	if err != nil {
		log.Error("translation bundle unavailable", zap.String("locale", locale), zap.Error(err))
		return
	}
	if res.FallbackUsed {
		log.Warn("translation catalog missing, serving baseline",
			zap.String("locale", locale),
			zap.String("served", res.Bundle.Locale))
	}
	c.Set(ContextKeyBundle, res.Bundle)
}

// GetBundle extracts the translation bundle from gin context
func GetBundle(c *gin.Context) (*i18n.Bundle, bool) {
	bundle, exists := c.Get(ContextKeyBundle)
	if !exists {
		return nil, false
	}
	b, ok := bundle.(*i18n.Bundle)
	return b, ok
}

// GetLocale extracts the resolved locale from gin context
func GetLocale(c *gin.Context) (string, bool) {
	locale, exists := c.Get(ContextKeyLocale)
	if !exists {
		return "", false
	}
	l, ok := locale.(string)
	return l, ok
}

// skipLocaleRouting reports whether a path is locale-neutral
func skipLocaleRouting(reqPath string) bool {
	for _, prefix := range localeSkipPrefixes {
		if strings.HasPrefix(reqPath, prefix) || reqPath == strings.TrimSuffix(prefix, "/") {
			return true
		}
	}
	// Files (robots.txt, sitemap.xml, favicons) are never redirected
	return path.Ext(reqPath) != ""
}

// localePrefix returns the first path segment if it is a supported locale
func localePrefix(reqPath string) (string, bool) {
	trimmed := strings.TrimPrefix(reqPath, "/")
	segment := trimmed
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		segment = trimmed[:idx]
	}
	if segment == "" {
		return "", false
	}
	if !i18n.IsSupported(segment) {
		return "", false
	}
	return segment, true
}

// resolveRequestLocale picks the locale for a request without a prefix.
// Cookie wins over Accept-Language; both fall back to the default.
func resolveRequestLocale(c *gin.Context) string {
	if cookie, err := c.Cookie(LocaleCookieName); err == nil && cookie != "" {
		return i18n.Resolve(cookie)
	}
	return i18n.ResolveAcceptLanguage(c.GetHeader("Accept-Language"))
}
