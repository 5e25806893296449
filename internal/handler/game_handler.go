package handler

import (
	"net/http"
	"strconv"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput defines the writable fields of a game. Foreign keys are scalar
// ids on the way in; the owning gamer always comes from the auth context.
type GameInput struct {
	Title           string `json:"title" binding:"required"`
	Maker           string `json:"maker" binding:"required"`
	NumberOfPlayers int    `json:"number_of_players" binding:"required,min=1"`
	SkillLevel      int    `json:"skill_level" binding:"required"`
	GameTypeID      uint   `json:"game_type" binding:"required"`
}

// GameResponse expands the game's foreign keys one level into objects.
type GameResponse struct {
	ID              uint             `json:"id"`
	Title           string           `json:"title"`
	Maker           string           `json:"maker"`
	NumberOfPlayers int              `json:"number_of_players"`
	SkillLevel      int              `json:"skill_level"`
	GameType        GameTypeResponse `json:"game_type"`
	Gamer           GamerResponse    `json:"gamer"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:              game.ID,
		Title:           game.Title,
		Maker:           game.Maker,
		NumberOfPlayers: game.NumberOfPlayers,
		SkillLevel:      game.SkillLevel,
		GameType:        newGameTypeResponse(game.GameType),
		Gamer:           newGamerResponse(game.Gamer),
	}
}

// endregion

// GetGames godoc
// @Summary      Get all games
// @Description  Retrieves all games, optionally filtered by game type.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        type  query     int  false  "Filter by GameType ID"
// @Success      200   {array}   GameResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	query := database.DB.Preload("GameType").Preload("Gamer")

	if gameType := c.Query("type"); gameType != "" {
		query = query.Where("game_type_id = ?", gameType)
	}

	var games []models.Game
	query.Find(&games)

	var response []GameResponse
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a game by ID
// @Description  Retrieves a single game with its type and owner expanded.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.Preload("GameType").Preload("Gamer").First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Adds a game to the catalog, owned by the calling gamer.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	gamerID := currentGamerID(c)

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var gameType models.GameType
	if err := database.DB.First(&gameType, input.GameTypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game_type"})
		return
	}

	game := models.Game{
		Title:           input.Title,
		Maker:           input.Maker,
		NumberOfPlayers: input.NumberOfPlayers,
		SkillLevel:      input.SkillLevel,
		GameTypeID:      input.GameTypeID,
		GamerID:         gamerID,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create game"})
		return
	}

	database.DB.Preload("GameType").Preload("Gamer").First(&game, game.ID)
	c.JSON(http.StatusCreated, newGameResponse(game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces a game's writable fields. Only the owner may update.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Only the owner can update the game"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	gamerID := currentGamerID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	if game.GamerID != gamerID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the owner can update the game"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var gameType models.GameType
	if err := database.DB.First(&gameType, input.GameTypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game_type"})
		return
	}

	game.Title = input.Title
	game.Maker = input.Maker
	game.NumberOfPlayers = input.NumberOfPlayers
	game.SkillLevel = input.SkillLevel
	game.GameTypeID = input.GameTypeID

	if err := database.DB.Save(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update game"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game from the catalog. Only the owner may delete.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Only the owner can delete the game"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	gamerID := currentGamerID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	if game.GamerID != gamerID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the owner can delete the game"})
		return
	}

	if err := database.DB.Delete(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete game"})
		return
	}

	c.Status(http.StatusNoContent)
}
