package auth

import (
	"net/http"
	"strings"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token on the request to a gamer and
// stores that gamer's ID on the context as "gamerID". Requests without a
// valid token are rejected with 401 before reaching any handler.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication credentials were not provided"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header"})
			return
		}

		var token models.AuthToken
		if err := database.DB.Where("key = ?", parts[1]).First(&token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set("gamerID", token.GamerID)
		c.Next()
	}
}
