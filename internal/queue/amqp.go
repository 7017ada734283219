package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"github.com/streadway/amqp"

	"github.com/unclebandit/influencer-portal/internal/model"
)

// Channel is the part of *amqp.Channel the queue uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPQueue publishes events to a durable topic exchange. Publishing goes
// through a circuit breaker so a dead broker fails fast.
type AMQPQueue struct {
	conn      *amqp.Connection
	ch        Channel
	exchange  string
	queueName string
	breaker   *gobreaker.CircuitBreaker
	mu        sync.Mutex
}

// DialAMQP connects to the broker and declares the exchange.
func DialAMQP(url, exchange, queueName string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	q, err := NewAMQPQueue(ch, exchange, queueName)
	if err != nil {
		conn.Close()
		return nil, err
	}
	q.conn = conn
	return q, nil
}

func NewAMQPQueue(ch Channel, exchange, queueName string) (*AMQPQueue, error) {
	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "amqp-publish",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})

	return &AMQPQueue{
		ch:        ch,
		exchange:  exchange,
		queueName: queueName,
		breaker:   breaker,
	}, nil
}

// Publish expects a model.Event; the topic is used as routing key.
func (q *AMQPQueue) Publish(topic string, payload any) error {
	event, ok := payload.(model.Event)
	if !ok {
		return fmt.Errorf("amqp queue: unsupported payload %T", payload)
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = q.breaker.Execute(func() (interface{}, error) {
		q.mu.Lock()
		defer q.mu.Unlock()
		return nil, q.ch.Publish(q.exchange, topic, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.OccurredAt,
			Type:         topic,
			Body:         body,
		})
	})
	return err
}

// Subscribe binds the durable queue to topic ("*" binds to everything) and
// consumes it in a goroutine. A failed delivery is requeued once, then dropped.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	key := topic
	if topic == AllTopics {
		key = "#"
	}

	declared, err := q.ch.QueueDeclare(
		q.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := q.ch.QueueBind(declared.Name, key, q.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := q.ch.Consume(
		declared.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for d := range msgs {
			handleDelivery(d, handler)
		}
		log.Info().Str("queue", declared.Name).Msg("consumer stopped")
	}()
	return nil
}

func handleDelivery(d amqp.Delivery, handler func(payload any) error) {
	var event model.Event
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Warn().Err(err).Str("message_id", d.MessageId).Msg("invalid event, dropping")
		d.Ack(false)
		return
	}

	if err := handler(event); err != nil {
		requeue := !d.Redelivered
		log.Warn().Err(err).Str("event_id", event.ID).Bool("requeue", requeue).Msg("failed to handle event")
		d.Nack(false, requeue)
		return
	}
	d.Ack(false)
}

func (q *AMQPQueue) Close() error {
	err := q.ch.Close()
	if q.conn != nil {
		if cerr := q.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
