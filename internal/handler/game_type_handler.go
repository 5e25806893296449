package handler

import (
	"net/http"
	"strconv"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GameTypeResponse defines the structure for a game type.
type GameTypeResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

func newGameTypeResponse(gameType models.GameType) GameTypeResponse {
	return GameTypeResponse{
		ID:    gameType.ID,
		Label: gameType.Label,
	}
}

// GetGameTypes godoc
// @Summary      Get all game types
// @Description  Retrieves the list of game type labels.
// @Tags         gametypes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   GameTypeResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /gametypes [get]
func GetGameTypes(c *gin.Context) {
	var gameTypes []models.GameType
	database.DB.Find(&gameTypes)

	var response []GameTypeResponse
	for _, gameType := range gameTypes {
		response = append(response, newGameTypeResponse(gameType))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameTypeByID godoc
// @Summary      Get a game type by ID
// @Description  Retrieves a single game type.
// @Tags         gametypes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "GameType ID"
// @Success      200  {object}  GameTypeResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /gametypes/{id} [get]
func GetGameTypeByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var gameType models.GameType
	if err := database.DB.First(&gameType, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newGameTypeResponse(gameType))
}
