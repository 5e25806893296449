package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGameTypes(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	token := registerGamer(t, r, "ann")

	t.Run("Requires authentication", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/gametypes", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Returns the seeded labels", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/gametypes", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []GameTypeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp)
		for _, gameType := range resp {
			assert.NotZero(t, gameType.ID)
			assert.NotEmpty(t, gameType.Label)
		}
	})
}

func TestGetGameTypeByID(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	token := registerGamer(t, r, "ann")

	t.Run("Success", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/gametypes/1", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp GameTypeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(1), resp.ID)
		assert.NotEmpty(t, resp.Label)
	})

	t.Run("Not found", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/gametypes/9999", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Message)
	})
}
