package poe

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"poegate/internal/config"
)

// HTTPClient talks to the Poe API gateway, authenticating with the p-b and
// p-lat session cookies.
type HTTPClient struct {
	baseURL string
	pb      string
	lat     string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client from the Poe section of the configuration.
// No client-level timeout is set; each call is bounded by its context.
func NewHTTPClient(cfg *config.PoeConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		pb:      cfg.PB,
		lat:     cfg.Lat,
		http:    &http.Client{},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "p-b", Value: c.pb})
	req.AddCookie(&http.Cookie{Name: "p-lat", Value: c.lat})
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *HTTPClient) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) GetAvailableBots(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/bots", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Bots []string `json:"bots"`
	}
	if err := c.doJSON(req, &out); err != nil {
		return nil, fmt.Errorf("listing bots: %w", err)
	}
	return out.Bots, nil
}

func (c *HTTPClient) GetSettings(ctx context.Context) (*Settings, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/settings", nil)
	if err != nil {
		return nil, err
	}
	var out Settings
	if err := c.doJSON(req, &out); err != nil {
		return nil, fmt.Errorf("fetching settings: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) GetBotInfo(ctx context.Context, handle string) (*BotInfo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/bot/"+url.PathEscape(handle), nil)
	if err != nil {
		return nil, err
	}
	var out BotInfo
	if err := c.doJSON(req, &out); err != nil {
		return nil, fmt.Errorf("fetching bot info for %s: %w", handle, err)
	}
	return &out, nil
}

type sendMessageRequest struct {
	Bot     string  `json:"bot"`
	Message string  `json:"message"`
	ChatID  *string `json:"chatId,omitempty"`
}

// SendMessage POSTs the prompt and decodes the newline-delimited JSON
// stream the gateway answers with, one MessageChunk per line.
func (c *HTTPClient) SendMessage(ctx context.Context, handle, message string, chatID *string) <-chan MessageChunk {
	out := make(chan MessageChunk, 10)

	go func() {
		defer close(out)

		body, err := json.Marshal(sendMessageRequest{Bot: handle, Message: message, ChatID: chatID})
		if err != nil {
			out <- MessageChunk{Err: fmt.Errorf("encoding message: %w", err)}
			return
		}
		req, err := c.newRequest(ctx, http.MethodPost, "/api/message", bytes.NewReader(body))
		if err != nil {
			out <- MessageChunk{Err: err}
			return
		}

		resp, err := c.http.Do(req)
		if err != nil {
			out <- MessageChunk{Err: fmt.Errorf("sending message: %w", err)}
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			out <- MessageChunk{Err: fmt.Errorf("sending message: unexpected status %s", resp.Status)}
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var chunk MessageChunk
			if err := json.Unmarshal(line, &chunk); err != nil {
				out <- MessageChunk{Err: fmt.Errorf("decoding stream: %w", err)}
				return
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			out <- MessageChunk{Err: fmt.Errorf("reading stream: %w", err)}
		}
	}()

	return out
}

type chatBreakRequest struct {
	Bot    string `json:"bot"`
	ChatID string `json:"chatId"`
}

func (c *HTTPClient) ChatBreak(ctx context.Context, handle, chatID string) error {
	body, err := json.Marshal(chatBreakRequest{Bot: handle, ChatID: chatID})
	if err != nil {
		return fmt.Errorf("encoding chat break: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/chat_break", bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("breaking chat %s: %w", chatID, err)
	}
	return nil
}
