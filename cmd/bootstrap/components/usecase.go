package components

import (
	"massfit-bot/internal/pkg/clock"
	"massfit-bot/internal/pkg/config"
	"massfit-bot/internal/usecase/commands"
	"massfit-bot/internal/usecase/notification"
	"massfit-bot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseNotificationModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBasketQueries,
		queries.NewOrderQueries,
	),
)

var usecaseNotificationModule = fx.Module("usecase/notification",
	fx.Provide(
		func(cfg config.Config) notification.Config {
			return notification.Config{StaffChatID: cfg.Bot.StaffChatID}
		},
		fx.Annotate(
			notification.NewDispatcher,
			fx.As(new(commands.OrderNotifier)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserUseCase,
		commands.NewBasketUseCase,
		commands.NewCheckoutUseCase,
		commands.NewOrderFinalizer,
		commands.NewOrderStatusUseCase,
	),
)
