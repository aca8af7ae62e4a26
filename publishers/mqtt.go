package publishers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"posts-lab/domain"
	"posts-lab/domain/event"
	"posts-lab/errors"
)

// QoS 2 asks the broker for its exactly-once-received tier. Delivery
// to consumers stays at-least-once; consumers deduplicate on the
// event id.
const publishQoS = 2

var (
	postsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "posts_events_published_total",
		Help: "Number of post events accepted by the broker.",
	})
	postsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "posts_events_dropped_total",
		Help: "Number of post events dropped because the broker was unreachable.",
	})
	reconnectAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "posts_publisher_reconnects_total",
		Help: "Number of reconnect attempts made by the publisher.",
	})
)

// MqttPostPublisher owns the single outbound MQTT connection. The
// mutex covers the whole observe-state, reconnect-if-needed, send
// sequence so only one reconnect attempt is ever in flight and
// concurrent publishes serialize on the connection state.
type MqttPostPublisher struct {
	mu      sync.Mutex
	client  mqtt.Client
	topic   string
	timeout time.Duration
	log     *slog.Logger
}

// NewMqttPostPublisher wraps an mqtt client configured by the caller.
// The client must have automatic reconnection disabled: reconnecting
// is this type's job, one attempt per publish at most.
func NewMqttPostPublisher(client mqtt.Client, topic string, timeout time.Duration, log *slog.Logger) *MqttPostPublisher {
	return &MqttPostPublisher{
		client:  client,
		topic:   topic,
		timeout: timeout,
		log:     log,
	}
}

// Connect performs the startup connection attempt. Failure is returned
// so main can log it, but the publisher stays usable: the next Publish
// retries the connection.
func (p *MqttPostPublisher) Connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectLocked()
}

// Publish serializes the post event to JSON and sends it with QoS 2.
// If the connection is down a single reconnect is attempted; if that
// fails the event is dropped and ErrPublisherUnavailable is returned.
// There is no local queue, a dropped event is lost.
func (p *MqttPostPublisher) Publish(post domain.PostSummary) error {
	payload, err := json.Marshal(event.FromPostSummary(post))
	if err != nil {
		return fmt.Errorf("marshalling post event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.client.IsConnected() {
		p.log.Warn("Publisher not connected, attempting to reconnect", "broker topic", p.topic)
		if err := p.connectLocked(); err != nil {
			postsDropped.Inc()
			return fmt.Errorf("%w: %v", errors.ErrPublisherUnavailable, err)
		}
	}

	token := p.client.Publish(p.topic, publishQoS, false, payload)
	if !token.WaitTimeout(p.timeout) {
		postsDropped.Inc()
		return fmt.Errorf("%w: publish timed out after %s", errors.ErrPublisherUnavailable, p.timeout)
	}
	if err := token.Error(); err != nil {
		postsDropped.Inc()
		return fmt.Errorf("%w: %v", errors.ErrPublisherUnavailable, err)
	}

	postsPublished.Inc()
	p.log.Debug("Post event published", "id", post.ID, "topic", p.topic)
	return nil
}

func (p *MqttPostPublisher) connectLocked() error {
	reconnectAttempts.Inc()
	token := p.client.Connect()
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("connect timed out after %s", p.timeout)
	}
	if err := token.Error(); err != nil {
		return err
	}
	p.log.Info("Publisher connected", "topic", p.topic)
	return nil
}

// Close disconnects from the broker, letting in-flight messages drain.
func (p *MqttPostPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
