package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/transport"
)

// Client is a minimal Bot API client: long-poll updates in, text and
// photo messages out. Refs are passed back to the platform verbatim.
type Client struct {
	httpclient *http.Client
	base       string
	token      string
}

func NewClient(cfg configs.BotConfig) *Client {
	return &Client{
		httpclient: &http.Client{Timeout: 90 * time.Second},
		base:       cfg.APIBase,
		token:      cfg.Token,
	}
}

type apiResponse struct {
	Ok          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

func (c *Client) call(ctx context.Context, method string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", method, err)
	}
	url := fmt.Sprintf("%s/bot%s/%s", c.base, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}
	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !envelope.Ok {
		return fmt.Errorf("%s rejected: %s", method, envelope.Description)
	}
	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

type getUpdatesRequest struct {
	Offset  int64 `json:"offset,omitempty"`
	Timeout int   `json:"timeout,omitempty"`
}

func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]transport.Update, error) {
	var updates []transport.Update
	err := c.call(ctx, "getUpdates", getUpdatesRequest{Offset: offset, Timeout: int(timeout.Seconds())}, &updates)
	if err != nil {
		return nil, err
	}
	return updates, nil
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type sendPhotoRequest struct {
	ChatID  int64  `json:"chat_id"`
	Photo   string `json:"photo"`
	Caption string `json:"caption,omitempty"`
}

func (c *Client) SendReply(ctx context.Context, reply model.Reply) error {
	switch reply.Kind {
	case model.ReplyPhoto:
		return c.call(ctx, "sendPhoto", sendPhotoRequest{ChatID: reply.ChatID, Photo: reply.Ref, Caption: reply.Caption}, nil)
	default:
		return c.call(ctx, "sendMessage", sendMessageRequest{ChatID: reply.ChatID, Text: reply.Text}, nil)
	}
}
