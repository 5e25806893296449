package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"levelup/backend/internal/auth"
	"levelup/backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global DB at a fresh in-memory sqlite database,
// named after the test so state never leaks between test functions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	database.Migrate(db)
	database.DB = db
	return db
}

// setupRouter builds a gin engine with the same route table as the server.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.RedirectTrailingSlash = false

	r.POST("/register", RegisterGamer)
	r.POST("/login", LoginGamer)

	gameTypeRoutes := r.Group("/gametypes")
	gameTypeRoutes.Use(auth.AuthMiddleware())
	{
		gameTypeRoutes.GET("", GetGameTypes)
		gameTypeRoutes.GET("/:id", GetGameTypeByID)
	}

	gameRoutes := r.Group("/games")
	gameRoutes.Use(auth.AuthMiddleware())
	{
		gameRoutes.GET("", GetGames)
		gameRoutes.POST("", CreateGame)
		gameRoutes.GET("/:id", GetGameByID)
		gameRoutes.PUT("/:id", UpdateGame)
		gameRoutes.DELETE("/:id", DeleteGame)
	}

	eventRoutes := r.Group("/events")
	eventRoutes.Use(auth.AuthMiddleware())
	{
		eventRoutes.GET("", GetEvents)
		eventRoutes.POST("", CreateEvent)
		eventRoutes.GET("/:id", GetEventByID)
		eventRoutes.PUT("/:id", UpdateEvent)
		eventRoutes.DELETE("/:id", DeleteEvent)
		eventRoutes.POST("/:id/signup", SignupEvent)
		eventRoutes.DELETE("/:id/leave", LeaveEvent)
	}

	return r
}

// performRequest issues a JSON request against the router, attaching the
// bearer token when one is given.
func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerGamer creates a gamer through the API and returns its token.
func registerGamer(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := performRequest(r, http.MethodPost, "/register", RegisterInput{
		Username:  username,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "Gamer",
		Bio:       "plays everything",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createGame adds a game through the API and returns its response.
func createGame(t *testing.T, r *gin.Engine, token string, gameTypeID uint) GameResponse {
	t.Helper()

	w := performRequest(r, http.MethodPost, "/games", GameInput{
		Title:           "Settlers of Catan",
		Maker:           "Klaus Teuber",
		NumberOfPlayers: 4,
		SkillLevel:      3,
		GameTypeID:      gameTypeID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// createEvent schedules an event through the API and returns its response.
func createEvent(t *testing.T, r *gin.Engine, token string, gameID uint) EventResponse {
	t.Helper()

	w := performRequest(r, http.MethodPost, "/events", EventInput{
		Description: "Friday game night",
		Date:        "2026-10-02",
		Time:        "19:30",
		GameID:      gameID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
