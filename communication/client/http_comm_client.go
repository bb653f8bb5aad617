package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"spiel/bot"
	"spiel/communication"
	"spiel/game"
	"time"
)

// RemoteBot forwards Step to a bot server.
type RemoteBot struct {
	serverURL string
	game      string
	client    *http.Client
}

func NewRemoteBot(serverURL, gameName string, timeout time.Duration) *RemoteBot {
	return &RemoteBot{
		serverURL: serverURL,
		game:      gameName,
		client:    &http.Client{Timeout: timeout},
	}
}

func (rb *RemoteBot) Step(ctx context.Context, state game.State) (game.Action, error) {
	data, err := json.Marshal(communication.Request(rb.game, state))
	if err != nil {
		return game.InvalidAction, fmt.Errorf("failed to encode step request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rb.serverURL+"/step", bytes.NewReader(data))
	if err != nil {
		return game.InvalidAction, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := rb.client.Do(req)
	if err != nil {
		return game.InvalidAction, fmt.Errorf("bot server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.InvalidAction, fmt.Errorf("bot server returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var step communication.StepResponse
	if err := json.NewDecoder(resp.Body).Decode(&step); err != nil {
		return game.InvalidAction, fmt.Errorf("failed to decode step response: %w", err)
	}
	return step.Action, nil
}

// Factory builds a RemoteBot from "url", "game" and "timeout" parameters, for
// registration with bot.Register.
func Factory(_ int, params map[string]string) (bot.Bot, error) {
	url := params["url"]
	if url == "" {
		return nil, fmt.Errorf("remote bot needs a url parameter")
	}
	timeout := 30 * time.Second
	if v := params["timeout"]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("remote bot timeout %q: %w", v, err)
		}
		timeout = d
	}
	return NewRemoteBot(url, params["game"], timeout), nil
}
