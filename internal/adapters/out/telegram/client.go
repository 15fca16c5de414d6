// Package telegram implements the messenger port against the Telegram Bot
// API. Only the three methods the notification layer needs are covered:
// sendMessage, editMessageText and deleteMessage.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fiesta/internal/core/ports"
	"fiesta/internal/pkg/errs"
)

const defaultAPIBaseURL = "https://api.telegram.org"

const requestTimeout = 10 * time.Second

// Client talks to the Telegram Bot API over plain HTTP. It satisfies
// ports.Messenger.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Bot API client for the given bot token.
func NewClient(token string) (*Client, error) {
	return NewClientWithBaseURL(token, defaultAPIBaseURL)
}

// NewClientWithBaseURL creates a client against a custom API endpoint.
// Used by tests and by installations behind a Bot API proxy.
func NewClientWithBaseURL(token, baseURL string) (*Client, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// inlineKeyboardButton is the wire form of one button.
type inlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

// inlineKeyboardMarkup is the wire form of an inline keyboard.
type inlineKeyboardMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

// apiResponse is the envelope every Bot API method returns.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

// messageResult carries the subset of the Message object the adapter needs.
type messageResult struct {
	MessageID int64 `json:"message_id"`
}

func toMarkup(keyboard ports.Keyboard) *inlineKeyboardMarkup {
	if len(keyboard) == 0 {
		return nil
	}

	rows := make([][]inlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]inlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, inlineKeyboardButton{
				Text:         button.Text,
				CallbackData: button.CallbackData,
				URL:          button.URL,
			})
		}
		rows = append(rows, buttons)
	}

	return &inlineKeyboardMarkup{InlineKeyboard: rows}
}

// SendMessage delivers a text message and returns the id Telegram assigned
// to it.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard ports.Keyboard) (int64, error) {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if markup := toMarkup(keyboard); markup != nil {
		payload["reply_markup"] = markup
	}

	result, err := c.call(ctx, "sendMessage", payload)
	if err != nil {
		return 0, err
	}

	var message messageResult
	if err = json.Unmarshal(result, &message); err != nil {
		return 0, fmt.Errorf("decode sendMessage result: %w", err)
	}

	return message.MessageID, nil
}

// EditMessage replaces the text and keyboard of an existing message. A nil
// keyboard removes the buttons.
func (c *Client) EditMessage(ctx context.Context, chatID int64, messageID int64, text string, keyboard ports.Keyboard) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	}
	if markup := toMarkup(keyboard); markup != nil {
		payload["reply_markup"] = markup
	}

	_, err := c.call(ctx, "editMessageText", payload)
	return err
}

// DeleteMessage removes a message. Telegram rejects deletion of messages
// older than 48 hours; callers fall back to EditMessage in that case.
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	_, err := c.call(ctx, "deleteMessage", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
	})
	return err
}

// call performs one Bot API method invocation and unwraps the response
// envelope.
func (c *Client) call(ctx context.Context, method string, payload map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}

	var envelope apiResponse
	if err = json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return nil, fmt.Errorf("%s failed: %d %s", method, envelope.ErrorCode, envelope.Description)
	}

	return envelope.Result, nil
}
