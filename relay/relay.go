package relay

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lguibr/pickleball/game"
	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

// Connect establishes a connection to Redis
func Connect(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// Publisher is the part of *redis.Client the relay needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Message is the JSON document published for every event.
type Message struct {
	game.Event
	Step      int   `json:"step"`
	Level     int   `json:"level"`
	Timestamp int64 `json:"ts"`
}

// Relay publishes the events of every frame to a Redis channel. Present only
// queues; a single worker does the network I/O, so a slow or unreachable
// Redis never stalls the game. Events that do not fit the queue are dropped.
type Relay struct {
	pub     Publisher
	channel string

	mu     sync.Mutex
	closed bool
	queue  chan []byte
	wg     sync.WaitGroup

	published atomic.Int64
	dropped   atomic.Int64
	failed    atomic.Int64
}

func New(pub Publisher, channel string, buffer int) *Relay {
	r := &Relay{
		pub:     pub,
		channel: channel,
		queue:   make(chan []byte, max(buffer, 1)),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

func (r *Relay) Present(frame game.Frame) {
	if len(frame.Events) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	now := time.Now().UnixMilli()
	for _, event := range frame.Events {
		payload, err := json.Marshal(Message{
			Event:     event,
			Step:      frame.Step,
			Level:     frame.Difficulty,
			Timestamp: now,
		})
		if err != nil {
			log.Printf("[RELAY] failed to encode %s event: %v", event.Type, err)
			continue
		}
		select {
		case r.queue <- payload:
		default:
			if r.dropped.Add(1) == 1 {
				log.Printf("[RELAY] queue full, dropping events")
			}
		}
	}
}

func (r *Relay) run() {
	defer r.wg.Done()
	for payload := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := r.pub.Publish(ctx, r.channel, payload).Err()
		cancel()
		if err != nil {
			if r.failed.Add(1) == 1 {
				log.Printf("[RELAY] publish to %s failed: %v", r.channel, err)
			}
			continue
		}
		r.published.Add(1)
	}
}

// Close stops accepting events and waits for the queued ones to be sent.
func (r *Relay) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
	log.Printf("[RELAY] closed: %d published, %d dropped, %d failed",
		r.published.Load(), r.dropped.Load(), r.failed.Load())
}

// Stats returns the published, dropped and failed event counts.
func (r *Relay) Stats() (published, dropped, failed int64) {
	return r.published.Load(), r.dropped.Load(), r.failed.Load()
}
