package middleware

import "github.com/gin-gonic/gin"

var securityHeaders = map[string]string{
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains; preload",
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "1; mode=block",
	"Content-Security-Policy":   "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline' https://demo.productionready.io https://code.ionicframework.com https://fonts.googleapis.com; font-src 'self' https://fonts.gstatic.com https://code.ionicframework.com; img-src 'self' https: data:; connect-src 'self'",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
}

// SecurityHeaders 为每个响应添加安全相关的头
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range securityHeaders {
			h.Set(k, v)
		}
		c.Next()
	}
}
