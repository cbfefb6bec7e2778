package bootstrap

import (
	"massfit-bot/internal/handler/bot"
	"massfit-bot/internal/infra/telegram"
	"massfit-bot/internal/pkg/config"
	"massfit-bot/internal/usecase/shared"

	"go.uber.org/fx"
)

var TelegramModule = fx.Module("telegram",
	fx.Provide(
		NewTelegramClient,
		func(c *telegram.Client) shared.Messenger { return c },
		func(c *telegram.Client) bot.UpdateSource { return c },
	),
)

func NewTelegramClient(cfg config.Config) *telegram.Client {
	return telegram.NewClient(cfg.Bot)
}
