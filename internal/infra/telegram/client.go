package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/pkg/config"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"

	"github.com/go-resty/resty/v2"
)

const parseModeHTML = "HTML"

type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.Code, e.Description)
}

// Client is the single outbound Bot API client. It implements shared.Messenger.
type Client struct {
	http *resty.Client
	// poll carries long-poll requests, which outlive the regular timeout by the poll window.
	poll *resty.Client
}

func NewClient(cfg config.BotConfig) *Client {
	base := strings.TrimRight(cfg.APIBaseURL, "/") + "/bot" + cfg.Token + "/"
	return &Client{
		http: newResty(base, cfg.APITimeout, cfg.APIRetries),
		poll: newResty(base, cfg.APITimeout+cfg.PollTimeout, 0),
	}
}

func newResty(base string, timeout time.Duration, retries int) *resty.Client {
	return resty.New().
		SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(retries).
		SetRetryWaitTime(300 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(shouldRetry)
}

func shouldRetry(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	code := r.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) call(ctx context.Context, method string, body any, out any) error {
	var env apiResponse
	resp, err := c.http.R().
		// Envelopes are decoded even when a proxy drops the content type.
		ForceContentType("application/json").
		SetContext(ctx).
		SetBody(body).
		SetResult(&env).
		SetError(&env).
		Post(method)
	if err != nil {
		return errs.Wrap(err, "telegram "+method)
	}
	if !env.OK {
		code := env.ErrorCode
		if code == 0 {
			code = resp.StatusCode()
		}
		return &APIError{Method: method, Code: code, Description: env.Description}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return errs.Wrap(err, "decode "+method+" result")
	}
	return nil
}

func (c *Client) Send(ctx context.Context, msg shared.OutboundMessage) (shared.MessageRef, error) {
	req := sendMessageRequest{
		ChatID:    msg.ChatID,
		Text:      msg.Text,
		ParseMode: parseModeHTML,
	}
	switch {
	case len(msg.Keyboard) > 0:
		req.ReplyMarkup = inlineMarkup(msg.Keyboard)
	case len(msg.Menu) > 0:
		req.ReplyMarkup = menuMarkup(msg.Menu)
	}
	if msg.ReplyTo != 0 {
		req.ReplyParameters = &replyParameters{MessageID: msg.ReplyTo}
	}

	var sent Message
	if err := c.call(ctx, "sendMessage", req, &sent); err != nil {
		return shared.MessageRef{}, err
	}
	return shared.MessageRef{ChatID: sent.Chat.ID, MessageID: sent.MessageID}, nil
}

func (c *Client) Edit(ctx context.Context, ref shared.MessageRef, text string, kb shared.Keyboard) error {
	req := editMessageTextRequest{
		ChatID:    ref.ChatID,
		MessageID: ref.MessageID,
		Text:      text,
		ParseMode: parseModeHTML,
	}
	if len(kb) > 0 {
		req.ReplyMarkup = inlineMarkup(kb)
	}
	err := c.call(ctx, "editMessageText", req, nil)
	if isNotModified(err) {
		return nil
	}
	return err
}

func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoRef, caption string, kb shared.Keyboard) (shared.MessageRef, error) {
	req := sendPhotoRequest{
		ChatID:    chatID,
		Photo:     photoRef,
		Caption:   caption,
		ParseMode: parseModeHTML,
	}
	if len(kb) > 0 {
		req.ReplyMarkup = inlineMarkup(kb)
	}

	var sent Message
	if err := c.call(ctx, "sendPhoto", req, &sent); err != nil {
		return shared.MessageRef{}, err
	}
	return shared.MessageRef{ChatID: sent.Chat.ID, MessageID: sent.MessageID}, nil
}

func (c *Client) SendLocation(ctx context.Context, chatID int64, loc order.Location, replyTo int64) (shared.MessageRef, error) {
	req := sendLocationRequest{
		ChatID:    chatID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
	if replyTo != 0 {
		req.ReplyParameters = &replyParameters{MessageID: replyTo}
	}

	var sent Message
	if err := c.call(ctx, "sendLocation", req, &sent); err != nil {
		return shared.MessageRef{}, err
	}
	return shared.MessageRef{ChatID: sent.Chat.ID, MessageID: sent.MessageID}, nil
}

func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	return c.call(ctx, "answerCallbackQuery", answerCallbackQueryRequest{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	}, nil)
}

func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	req := getUpdatesRequest{
		Offset:         offset,
		Timeout:        int(timeout.Seconds()),
		AllowedUpdates: []string{"message", "callback_query"},
	}

	var env apiResponse
	_, err := c.poll.R().
		ForceContentType("application/json").
		SetContext(ctx).
		SetBody(req).
		SetResult(&env).
		SetError(&env).
		Post("getUpdates")
	if err != nil {
		return nil, errs.Wrap(err, "telegram getUpdates")
	}
	if !env.OK {
		return nil, &APIError{Method: "getUpdates", Code: env.ErrorCode, Description: env.Description}
	}

	var updates []Update
	if err := json.Unmarshal(env.Result, &updates); err != nil {
		return nil, errs.Wrap(err, "decode getUpdates result")
	}
	return updates, nil
}

func inlineMarkup(kb shared.Keyboard) *inlineKeyboardMarkup {
	rows := make([][]inlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]inlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, inlineKeyboardButton{Text: b.Text, CallbackData: b.Data})
		}
		rows = append(rows, buttons)
	}
	return &inlineKeyboardMarkup{InlineKeyboard: rows}
}

func menuMarkup(menu [][]shared.MenuButton) *replyKeyboardMarkup {
	rows := make([][]keyboardButton, 0, len(menu))
	for _, row := range menu {
		buttons := make([]keyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, keyboardButton{Text: b.Text, RequestContact: b.RequestContact})
		}
		rows = append(rows, buttons)
	}
	return &replyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
}

// Editing to identical content is reported as an error by the API.
func isNotModified(err error) bool {
	var apiErr *APIError
	if !errs.As(err, &apiErr) {
		return false
	}
	return strings.Contains(apiErr.Description, "message is not modified")
}
