package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"weddinghub/internal/logger"
)

// AMQPNotifier publishes wedding update events to a RabbitMQ topic exchange.
// Routing key: wedding.<id>.updated.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// updateEvent is the JSON payload sent to listeners.
type updateEvent struct {
	WeddingID uint      `json:"wedding_id"`
	Event     string    `json:"event"`
	At        time.Time `json:"at"`
}

// NewAMQPNotifier connects to the broker and declares the topic exchange.
func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

// WeddingUpdated publishes the event. Errors are logged and swallowed:
// listeners get no delivery guarantee and a broken broker must never fail
// the mutation that already committed.
func (n *AMQPNotifier) WeddingUpdated(ctx context.Context, weddingID uint, event string) {
	body, err := json.Marshal(updateEvent{WeddingID: weddingID, Event: event, At: time.Now().UTC()})
	if err != nil {
		logger.Get().Warnw("notify: marshal event", "error", err)
		return
	}

	key := fmt.Sprintf("wedding.%d.updated", weddingID)
	err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logger.Get().Warnw("notify: publish failed",
			"wedding_id", weddingID,
			"event", event,
			"error", err,
		)
	}
}

// Close tears down the channel and connection.
func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
