package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"massfit-bot/internal/pkg/config"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"

	"github.com/streadway/amqp"
)

const (
	exchangeKind = "topic"

	defaultDialTimeout = 5 * time.Second
	redialCooldown     = 5 * time.Second
)

// ErrBrokerUnavailable is returned while the broker is being redialed or
// inside the cooldown after a failed dial. The event is dropped.
var ErrBrokerUnavailable = errs.New("amqp broker unavailable")

type dialFunc func(url string, timeout time.Duration) (*amqp.Connection, error)

func dialAMQP(url string, timeout time.Duration) (*amqp.Connection, error) {
	return amqp.DialConfig(url, amqp.Config{
		Dial:      amqp.DefaultDial(timeout),
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
}

// AMQPPublisher sends order events to a durable topic exchange, routed by event type.
type AMQPPublisher struct {
	url      string
	exchange string
	dial     dialFunc
	now      func() time.Time

	// dialing admits a single redial; publishers arriving meanwhile fail fast.
	dialing atomic.Bool

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	retryAt time.Time
}

func newPublisher(cfg config.EventsConfig, dial dialFunc, now func() time.Time) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.AMQPURL, exchange: cfg.Exchange, dial: dial, now: now}
}

func NewAMQPPublisher(cfg config.EventsConfig) (*AMQPPublisher, error) {
	p := newPublisher(cfg, dialAMQP, time.Now)
	conn, ch, err := p.connect(defaultDialTimeout)
	if err != nil {
		return nil, err
	}
	p.conn, p.channel = conn, ch
	return p, nil
}

// connect touches no shared state, so it runs without mu.
func (p *AMQPPublisher) connect(timeout time.Duration) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := p.dial(p.url, timeout)
	if err != nil {
		return nil, nil, errs.Wrap(err, "dial amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "open amqp channel")
	}
	err = ch.ExchangeDeclare(
		p.exchange,
		exchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "declare exchange "+p.exchange)
	}

	slog.Info("amqp publisher connected", "exchange", p.exchange)
	return conn, ch, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev shared.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "publish order event")
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal order event")
	}
	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: ev.CorrelationID,
		Timestamp:     time.Now(),
		Body:          body,
	}

	ch, err := p.currentChannel(ctx)
	if err != nil {
		return err
	}
	err = ch.Publish(p.exchange, string(ev.Type), false, false, msg)
	if err == nil {
		return nil
	}

	// One reconnect per publish.
	slog.Warn("amqp publish failed, reconnecting", "error", err.Error())
	p.invalidate(ch)
	if ch, err = p.currentChannel(ctx); err != nil {
		return err
	}
	if err := ch.Publish(p.exchange, string(ev.Type), false, false, msg); err != nil {
		return errs.Wrap(err, "publish order event")
	}
	return nil
}

func (p *AMQPPublisher) currentChannel(ctx context.Context) (*amqp.Channel, error) {
	p.mu.Lock()
	if p.channel != nil && p.conn != nil && !p.conn.IsClosed() {
		ch := p.channel
		p.mu.Unlock()
		return ch, nil
	}
	cooling := p.now().Before(p.retryAt)
	p.mu.Unlock()
	if cooling {
		return nil, ErrBrokerUnavailable
	}

	timeout := dialTimeout(ctx)
	if timeout <= 0 {
		return nil, errs.Wrap(context.DeadlineExceeded, "dial amqp")
	}
	if !p.dialing.CompareAndSwap(false, true) {
		return nil, ErrBrokerUnavailable
	}
	defer p.dialing.Store(false)

	conn, ch, err := p.connect(timeout)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.retryAt = p.now().Add(redialCooldown)
		return nil, err
	}
	p.closeLocked()
	p.conn, p.channel = conn, ch
	p.retryAt = time.Time{}
	return ch, nil
}

// dialTimeout bounds a redial by the caller's deadline.
func dialTimeout(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < defaultDialTimeout {
			return left
		}
	}
	return defaultDialTimeout
}

func (p *AMQPPublisher) invalidate(ch *amqp.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == ch {
		p.closeLocked()
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *AMQPPublisher) closeLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}
	p.conn = nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, shared.OrderEvent) error { return nil }
