package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"massfit-bot/internal/handler/bot"
	"massfit-bot/internal/handler/httperr"
	"massfit-bot/internal/infra/telegram"
	"massfit-bot/internal/pkg/config"
	"massfit-bot/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type WebhookHandler struct {
	dispatcher bot.UpdateDispatcher
	secret     string
}

func NewWebhookHandler(dispatcher bot.UpdateDispatcher, cfg config.Config) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher, secret: cfg.Bot.WebhookSecret}
}

// @Summary Telegram webhook
// @Description Receives one Bot API update
// @Tags telegram
// @Accept json
// @Success 200
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /telegram/webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	if h.secret != "" {
		got := c.GetHeader(secretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("webhook secret mismatch"), "Unauthorized", nil)
			return
		}
	}

	var upd telegram.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		slog.Warn("malformed webhook update", "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid update", nil)
		return
	}

	// Failures are logged inside Dispatch; a non-2xx would only make Telegram redeliver.
	h.dispatcher.Dispatch(c.Request.Context(), upd)
	c.Status(http.StatusOK)
}
