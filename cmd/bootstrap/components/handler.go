package components

import (
	"massfit-bot/internal/handler"
	"massfit-bot/internal/handler/api"
	"massfit-bot/internal/handler/bot"
	"massfit-bot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			bot.NewUpdateRouter,
			fx.As(new(bot.UpdateDispatcher)),
		),
		bot.NewPoller,
		api.NewWebhookHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		handler.NewRouter,
		bot.RegisterPoller,
	),
)
