package handler

import (
	"net/http"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for gamer registration.
type RegisterInput struct {
	Username  string `json:"username" binding:"required" example:"ann"`
	Password  string `json:"password" binding:"required" example:"password123"`
	FirstName string `json:"first_name" binding:"required" example:"Ann"`
	LastName  string `json:"last_name" binding:"required" example:"North"`
	Bio       string `json:"bio" example:"Loves co-op board games"`
}

// LoginInput defines the structure for gamer login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"ann"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse carries the opaque token issued at registration.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginResponse reports whether the credentials were valid. Token is only
// present on success; invalid username and invalid password are deliberately
// indistinguishable to the caller.
type LoginResponse struct {
	Valid bool   `json:"valid"`
	Token string `json:"token,omitempty"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"An error message"`
}

// endregion

// RegisterGamer godoc
// @Summary      Register a new gamer
// @Description  Creates a gamer profile and returns its authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func RegisterGamer(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.Gamer
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	gamer := models.Gamer{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Bio:          input.Bio,
	}
	if err := database.DB.Create(&gamer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create gamer"})
		return
	}

	token := models.AuthToken{
		Key:     uuid.NewString(),
		GamerID: gamer.ID,
	}
	if err := database.DB.Create(&token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create token"})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token.Key})
}

// LoginGamer godoc
// @Summary      Log in a gamer
// @Description  Verifies credentials and returns the gamer's existing token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /login [post]
func LoginGamer(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var gamer models.Gamer
	if err := database.DB.Where("username = ?", input.Username).First(&gamer).Error; err != nil {
		c.JSON(http.StatusOK, LoginResponse{Valid: false})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(gamer.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusOK, LoginResponse{Valid: false})
		return
	}

	var token models.AuthToken
	if err := database.DB.Where("gamer_id = ?", gamer.ID).First(&token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Valid: true, Token: token.Key})
}
