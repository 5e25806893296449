package handler

import (
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GamerResponse defines the structure for a gamer embedded in a resource.
type GamerResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

func newGamerResponse(gamer models.Gamer) GamerResponse {
	return GamerResponse{
		ID:        gamer.ID,
		Username:  gamer.Username,
		FirstName: gamer.FirstName,
		LastName:  gamer.LastName,
		Bio:       gamer.Bio,
	}
}

// currentGamerID returns the gamer resolved by the auth middleware.
func currentGamerID(c *gin.Context) uint {
	gamerID, _ := c.Get("gamerID")
	return gamerID.(uint)
}
