package bot

import (
	"context"
	"log/slog"
	"time"

	"massfit-bot/internal/infra/telegram"
	"massfit-bot/internal/pkg/config"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const pollErrorBackoff = 2 * time.Second

type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.Update, error)
}

type UpdateDispatcher interface {
	Dispatch(ctx context.Context, upd telegram.Update)
}

// Poller long-polls getUpdates and hands each update to its own goroutine,
// at most cfg.PollWorkers at a time.
type Poller struct {
	source   UpdateSource
	handler  UpdateDispatcher
	timeout  time.Duration
	workers  int
	cancel   context.CancelFunc
	finished chan struct{}
}

func NewPoller(source UpdateSource, handler UpdateDispatcher, cfg config.Config) *Poller {
	workers := cfg.Bot.PollWorkers
	if workers <= 0 {
		workers = 1
	}
	return &Poller{
		source:  source,
		handler: handler,
		timeout: cfg.Bot.PollTimeout,
		workers: workers,
	}
}

func (p *Poller) Run(ctx context.Context) error {
	g := new(errgroup.Group)
	g.SetLimit(p.workers)

	var offset int64
	for ctx.Err() == nil {
		updates, err := p.source.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			slog.Warn("getUpdates failed", "error", err.Error())
			select {
			case <-ctx.Done():
			case <-time.After(pollErrorBackoff):
			}
			continue
		}

		for _, upd := range updates {
			offset = upd.UpdateID + 1
			g.Go(func() error {
				p.handler.Dispatch(ctx, upd)
				return nil
			})
		}
	}
	return g.Wait()
}

func (p *Poller) start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.finished = make(chan struct{})
	go func() {
		defer close(p.finished)
		if err := p.Run(ctx); err != nil {
			slog.Error("poller stopped with error", "error", err.Error())
		}
	}()
}

func (p *Poller) stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	select {
	case <-p.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RegisterPoller starts polling with the app when the bot runs in polling mode.
func RegisterPoller(lc fx.Lifecycle, p *Poller, cfg config.Config) {
	if cfg.Bot.Mode != config.BotModePolling {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("🤖 starting update poller", "workers", p.workers)
			p.start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("🛑 stopping update poller")
			return p.stop(ctx)
		},
	})
}
