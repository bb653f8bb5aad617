package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"spiel/bot"
	"spiel/communication/server"
	"spiel/game"
	"spiel/game/gametest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRemoteBotStep(t *testing.T) {
	t.Run("plays through the bot server", func(t *testing.T) {
		ts := httptest.NewServer(server.NewServer("first", bot.NewFirst()).Handler())
		defer ts.Close()
		rb := NewRemoteBot(ts.URL, "race", time.Second)

		action, err := rb.Step(context.Background(), gametest.NewRace(5).Play(2))

		require.NoError(t, err)
		require.Equal(t, game.Action(1), action)
	})

	t.Run("server errors are returned", func(t *testing.T) {
		ts := httptest.NewServer(server.NewServer("first", bot.NewFirst()).Handler())
		defer ts.Close()
		rb := NewRemoteBot(ts.URL, "race", time.Second)

		_, err := rb.Step(context.Background(), gametest.NewRace(1).Play(1))

		require.ErrorContains(t, err, "status 422")
	})

	t.Run("unreachable server", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		_, err := NewRemoteBot(url, "race", time.Second).Step(context.Background(), gametest.NewRace(5))

		require.ErrorContains(t, err, "unreachable")
	})

	t.Run("malformed response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer ts.Close()

		_, err := NewRemoteBot(ts.URL, "race", time.Second).Step(context.Background(), gametest.NewRace(5))

		require.ErrorContains(t, err, "decode")
	})
}

func TestFactory(t *testing.T) {
	t.Run("needs a url", func(t *testing.T) {
		_, err := Factory(0, map[string]string{})
		require.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		_, err := Factory(0, map[string]string{"url": "http://localhost:1", "timeout": "soon"})
		require.Error(t, err)
	})

	t.Run("registered through the bot registry", func(t *testing.T) {
		bot.Register("remote-test", Factory)

		b, err := bot.New(1, "remote-test:url=http://localhost:8080,game=breakthrough,timeout=2s")

		require.NoError(t, err)
		rb := b.(*RemoteBot)
		require.Equal(t, "http://localhost:8080", rb.serverURL)
		require.Equal(t, "breakthrough", rb.game)
		require.Equal(t, 2*time.Second, rb.client.Timeout)
	})
}
