package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds security-related HTTP headers to all responses
// These headers help protect against common web vulnerabilities
func SecurityHeaders() gin.HandlerFunc {
	serverEnv := os.Getenv("SOLACE_SERVER_ENV")
	isProduction := serverEnv == "production"

	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking attacks
		c.Header("X-Frame-Options", "DENY")

		// Control how much referrer information is sent
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Mood and journal responses are sensitive; never cache them
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")

		// HTTP Strict Transport Security (HSTS)
		// Only set in production with HTTPS
		if isProduction {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		// APIs don't serve HTML, but this provides defense-in-depth
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Disable browser features that aren't needed for an API
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		c.Next()
	}
}
