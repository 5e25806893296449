package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	token := registerGamer(t, r, "ann")

	t.Run("Success", func(t *testing.T) {
		game := createGame(t, r, token, 1)

		assert.NotZero(t, game.ID)
		assert.Equal(t, "Settlers of Catan", game.Title)
		// Read representation expands foreign keys into objects
		assert.Equal(t, uint(1), game.GameType.ID)
		assert.NotEmpty(t, game.GameType.Label)
		assert.Equal(t, "ann", game.Gamer.Username)
	})

	t.Run("Zero players fails validation", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/games", GameInput{
			Title:           "Solitaire",
			Maker:           "Unknown",
			NumberOfPlayers: 0,
			SkillLevel:      1,
			GameTypeID:      1,
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown game type fails validation", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/games", GameInput{
			Title:           "Mystery",
			Maker:           "Unknown",
			NumberOfPlayers: 2,
			SkillLevel:      1,
			GameTypeID:      9999,
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetGames(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	token := registerGamer(t, r, "ann")

	first := createGame(t, r, token, 1)
	w := performRequest(r, http.MethodPost, "/games", GameInput{
		Title:           "Gloomhaven",
		Maker:           "Isaac Childres",
		NumberOfPlayers: 4,
		SkillLevel:      5,
		GameTypeID:      2,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("Unfiltered list returns everything", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/games", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []GameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("Filter by type returns the matching subset", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/games?type=1", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []GameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, first.ID, resp[0].ID)
	})

	t.Run("Filter with no matches returns the empty set", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/games?type=5", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []GameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 0)
	})
}

func TestGetGameByID(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	token := registerGamer(t, r, "ann")
	game := createGame(t, r, token, 1)

	t.Run("Success", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, fmt.Sprintf("/games/%d", game.ID), nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp GameResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, game.ID, resp.ID)
		assert.Equal(t, "ann", resp.Gamer.Username)
	})

	t.Run("Not found", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/games/9999", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Message)
	})
}

func TestUpdateGame(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()
	token := registerGamer(t, r, "ann")
	otherToken := registerGamer(t, r, "bob")
	game := createGame(t, r, token, 1)

	input := GameInput{
		Title:           "Settlers of Catan (5-6 players)",
		Maker:           "Klaus Teuber",
		NumberOfPlayers: 6,
		SkillLevel:      3,
		GameTypeID:      1,
	}

	t.Run("Owner updates in place with no body", func(t *testing.T) {
		w := performRequest(r, http.MethodPut, fmt.Sprintf("/games/%d", game.ID), input, token)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())

		var updated models.Game
		require.NoError(t, db.First(&updated, game.ID).Error)
		assert.Equal(t, "Settlers of Catan (5-6 players)", updated.Title)
		assert.Equal(t, 6, updated.NumberOfPlayers)
	})

	t.Run("Non-owner is forbidden", func(t *testing.T) {
		w := performRequest(r, http.MethodPut, fmt.Sprintf("/games/%d", game.ID), input, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		w := performRequest(r, http.MethodPut, "/games/9999", input, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteGame(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	token := registerGamer(t, r, "ann")
	otherToken := registerGamer(t, r, "bob")
	game := createGame(t, r, token, 1)

	t.Run("Non-owner is forbidden", func(t *testing.T) {
		w := performRequest(r, http.MethodDelete, fmt.Sprintf("/games/%d", game.ID), nil, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Owner deletes with no body", func(t *testing.T) {
		w := performRequest(r, http.MethodDelete, fmt.Sprintf("/games/%d", game.ID), nil, token)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())

		var count int64
		database.DB.Model(&models.Game{}).Where("id = ?", game.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Not found", func(t *testing.T) {
		w := performRequest(r, http.MethodDelete, "/games/9999", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
