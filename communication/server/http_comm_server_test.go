package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"spiel/bot"
	"spiel/communication"
	"spiel/game"
	"testing"

	"github.com/stretchr/testify/require"
)

type failing struct{}

func (failing) Step(context.Context, game.State) (game.Action, error) {
	return game.InvalidAction, errors.New("model not loaded")
}

func post(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/step", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleStep(t *testing.T) {
	t.Run("returns the bot's action", func(t *testing.T) {
		s := NewServer("first", bot.NewFirst())

		rec := post(t, s, `{"game":"breakthrough","player":0,"legal_actions":[98,101],"board":""}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp communication.StepResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, game.Action(98), resp.Action)
	})

	t.Run("bad json", func(t *testing.T) {
		rec := post(t, NewServer("first", bot.NewFirst()), `{"player":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no legal actions", func(t *testing.T) {
		rec := post(t, NewServer("first", bot.NewFirst()), `{"player":0,"legal_actions":[]}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("bot failure", func(t *testing.T) {
		rec := post(t, NewServer("broken", failing{}), `{"player":0,"legal_actions":[1]}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "model not loaded")
	})
}

func TestHandlePing(t *testing.T) {
	s := NewServer("random", bot.NewRandom(1))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"pong","bot":"random"}`, rec.Body.String())
}
