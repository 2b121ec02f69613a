package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/savaki/paper-a-day/pkg/models"
)

// EventTypePaperRead is the envelope type of published read events
const EventTypePaperRead = "paper.read"

// defaultDialTimeout matches the amqp091-go connection timeout
const defaultDialTimeout = 30 * time.Second

// Meta describes a published envelope
type Meta struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Time time.Time `json:"time"`
}

// Envelope wraps a published event
type Envelope struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

// PaperRead is the data of a paper.read envelope. User is left empty for
// anonymous reads.
type PaperRead struct {
	User           string       `json:"user,omitempty"`
	Paper          models.Paper `json:"paper"`
	AnonSubmission bool         `json:"anonSubmission"`
}

// Publisher fans confirmed reads out to RabbitMQ. A Lambda invocation is
// short-lived, so each publish dials its own connection.
type Publisher struct {
	url        string
	exchange   string
	routingKey string
	timeout    time.Duration
	dial       func(url string, cfg amqp.Config) (*amqp.Connection, error)
}

// NewPublisher creates a RabbitMQ publisher. timeout bounds the broker dial.
func NewPublisher(amqpURL, exchange, routingKey string, timeout time.Duration) *Publisher {
	return &Publisher{
		url:        amqpURL,
		exchange:   exchange,
		routingKey: routingKey,
		timeout:    timeout,
		dial:       amqp.DialConfig,
	}
}

// dialTimeout is the publisher timeout, shortened to the context deadline
func (p *Publisher) dialTimeout(ctx context.Context) time.Duration {
	timeout := p.timeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

// NewEnvelope builds the paper.read envelope for a confirmed read
func NewEnvelope(read Read) Envelope {
	data := PaperRead{Paper: read.Paper, AnonSubmission: read.Anonymous}
	if !read.Anonymous {
		data.User = read.User
	}

	return Envelope{
		Meta: Meta{
			ID:   uuid.NewString(),
			Type: EventTypePaperRead,
			Time: time.Now().UTC(),
		},
		Data: data,
	}
}

// NotifyRead publishes a paper.read envelope. It never adds a suffix.
func (p *Publisher) NotifyRead(ctx context.Context, read Read) (string, error) {
	env := NewEnvelope(read)
	body, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}

	timeout := p.dialTimeout(ctx)
	if timeout <= 0 {
		return "", fmt.Errorf("dial amqp: %w", context.DeadlineExceeded)
	}

	conn, err := p.dial(p.url, amqp.Config{Dial: amqp.DefaultDial(timeout)})
	if err != nil {
		return "", fmt.Errorf("dial amqp: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return "", fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    env.Meta.ID,
		Type:         env.Meta.Type,
		Timestamp:    env.Meta.Time,
	})
	if err != nil {
		return "", fmt.Errorf("publish envelope: %w", err)
	}

	log.Printf("Published %s event %s for %s", env.Meta.Type, env.Meta.ID, read.Paper.SlackID)
	return "", nil
}
