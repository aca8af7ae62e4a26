package publishers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"

	"posts-lab/domain"
	"posts-lab/domain/event"
	"posts-lab/errors"
)

// fakeToken completes immediately with a fixed outcome.
type fakeToken struct {
	err error
}

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Done() <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}
func (t fakeToken) Error() error { return t.err }

// fakeClient simulates broker state without a network.
type fakeClient struct {
	mu           sync.Mutex
	connected    bool
	connectErr   error
	connectCalls int
	publishErr   error
	published    [][]byte
}

func (c *fakeClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *fakeClient) IsConnectionOpen() bool { return c.IsConnected() }

func (c *fakeClient) Connect() mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectCalls++
	if c.connectErr != nil {
		return fakeToken{err: c.connectErr}
	}
	c.connected = true
	return fakeToken{}
}

func (c *fakeClient) Disconnect(uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
}

func (c *fakeClient) Publish(_ string, _ byte, _ bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.publishErr != nil {
		return fakeToken{err: c.publishErr}
	}
	c.published = append(c.published, payload.([]byte))
	return fakeToken{}
}

func (c *fakeClient) Subscribe(string, byte, mqtt.MessageHandler) mqtt.Token { return fakeToken{} }
func (c *fakeClient) SubscribeMultiple(map[string]byte, mqtt.MessageHandler) mqtt.Token {
	return fakeToken{}
}
func (c *fakeClient) Unsubscribe(...string) mqtt.Token        { return fakeToken{} }
func (c *fakeClient) AddRoute(string, mqtt.MessageHandler)    {}
func (c *fakeClient) OptionsReader() mqtt.ClientOptionsReader { return mqtt.ClientOptionsReader{} }

func newTestPublisher(client mqtt.Client) *MqttPostPublisher {
	return NewMqttPostPublisher(client, "posts/created", time.Second, slog.Default())
}

func TestMqttPostPublisher_Publish(t *testing.T) {
	t.Run("should deliver the canonical event while connected", func(t *testing.T) {
		req := require.New(t)
		client := &fakeClient{connected: true}
		publisher := newTestPublisher(client)

		post := domain.NewPostSummary("Hello", "World", "user-1")
		req.NoError(publisher.Publish(post))

		req.Len(client.published, 1)
		var published event.PostPublishedEvent
		req.NoError(json.Unmarshal(client.published[0], &published))
		req.Equal(post.ID, published.ID)
		req.Equal("Hello", published.Title)
		req.Equal("World", published.Content)
		req.Equal("user-1", published.UserRef)
		// No reconnect while the connection is healthy.
		req.Zero(client.connectCalls)
	})

	t.Run("should reconnect exactly once after a connection drop", func(t *testing.T) {
		req := require.New(t)
		client := &fakeClient{connected: false}
		publisher := newTestPublisher(client)

		post := domain.NewPostSummary("Hello", "World", "user-1")
		req.NoError(publisher.Publish(post))

		req.Equal(1, client.connectCalls)
		req.Len(client.published, 1)
	})

	t.Run("should drop the event when the reconnect fails", func(t *testing.T) {
		req := require.New(t)
		client := &fakeClient{connected: false, connectErr: fmt.Errorf("broker down")}
		publisher := newTestPublisher(client)

		err := publisher.Publish(domain.NewPostSummary("Hello", "World", "user-1"))

		req.ErrorIs(err, errors.ErrPublisherUnavailable)
		req.Equal(1, client.connectCalls)
		req.Empty(client.published)
	})

	t.Run("should report a broker rejection as unavailable", func(t *testing.T) {
		req := require.New(t)
		client := &fakeClient{connected: true, publishErr: fmt.Errorf("not authorized")}
		publisher := newTestPublisher(client)

		err := publisher.Publish(domain.NewPostSummary("Hello", "World", "user-1"))

		req.ErrorIs(err, errors.ErrPublisherUnavailable)
	})

	t.Run("should serialize concurrent publishes", func(t *testing.T) {
		req := require.New(t)
		client := &fakeClient{connected: true}
		publisher := newTestPublisher(client)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				post := domain.NewPostSummary(fmt.Sprintf("post-%d", i), "body", "user-1")
				req.NoError(publisher.Publish(post))
			}(i)
		}
		wg.Wait()

		req.Len(client.published, 20)
	})
}

func TestMqttPostPublisher_Connect(t *testing.T) {
	t.Run("should surface the startup connection failure", func(t *testing.T) {
		req := require.New(t)
		client := &fakeClient{connectErr: fmt.Errorf("broker down")}
		publisher := newTestPublisher(client)

		req.Error(publisher.Connect())
	})

	t.Run("should recover on the next publish once the broker returns", func(t *testing.T) {
		req := require.New(t)
		client := &fakeClient{connectErr: fmt.Errorf("broker down")}
		publisher := newTestPublisher(client)
		req.Error(publisher.Connect())

		// Broker comes back.
		client.mu.Lock()
		client.connectErr = nil
		client.mu.Unlock()

		req.NoError(publisher.Publish(domain.NewPostSummary("Hello", "World", "user-1")))
		req.Len(client.published, 1)
	})
}
