package middleware

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetUpMiddleware installs the shared middleware. The client is a separate
// SPA, so CORS stays permissive unless CORS_ORIGIN narrows it.
func SetUpMiddleware(r *gin.Engine) {
	origins := []string{"*"}
	if o := os.Getenv("CORS_ORIGIN"); o != "" {
		origins = []string{o}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
}
