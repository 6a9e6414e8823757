package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/GoArmGo/Wallsplash/internal/messaging/payloads"
)

const publishTimeout = 5 * time.Second

// Client представляет собой клиент RabbitMQ, публикующий события об обоях
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

// NewClient подключается к RabbitMQ и объявляет очередь событий
func NewClient(url, queueName string, logger *slog.Logger) (*Client, error) {
	client := &Client{logger: logger}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	client.conn = conn
	logger.Info("connected to RabbitMQ")

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	client.channel = ch

	// Идемпотентно: очередь создается, только если ее еще нет
	q, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}
	client.queue = q
	logger.Info("queue declared", "queue", q.Name, "messages", q.Messages)

	return client, nil
}

// Close закрывает канал и соединение RabbitMQ
func (c *Client) Close() {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("error closing RabbitMQ channel", "error", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("error closing RabbitMQ connection", "error", err)
		}
	}
}

// EncodeWallpaperApplied сериализует событие, проставляя тип события, если он не задан
func EncodeWallpaperApplied(payload payloads.WallpaperAppliedPayload) ([]byte, error) {
	if payload.Event == "" {
		payload.Event = payloads.WallpaperAppliedEventType
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload to JSON: %w", err)
	}
	return body, nil
}

// PublishWallpaperApplied публикует событие wallpaper.applied.
// Реализует интерфейс ports.WallpaperEventPublisher.
func (c *Client) PublishWallpaperApplied(ctx context.Context, payload payloads.WallpaperAppliedPayload) error {
	body, err := EncodeWallpaperApplied(payload)
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         payloads.WallpaperAppliedEventType,
			MessageId:    payload.RunID,
			Timestamp:    payload.AppliedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish a message: %w", err)
	}

	c.logger.Info("event published", "queue", c.queue.Name, "event", payloads.WallpaperAppliedEventType, "photo_id", payload.PhotoID)
	return nil
}
