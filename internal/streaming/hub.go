package streaming

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/agentforge/core/pkg/model"
)

const defaultOutboxBuffer = 64

// outbox is one subscriber's bounded event channel.
type outbox struct {
	ch chan Event
}

// Hub is a hub-and-spoke event broker: one set of per-execution
// subscriber outboxes, with the server-side producer expected to call
// Publish serially per execution-id (the per-node state machine ordering
// is the producer's responsibility — the hub only fans out).
//
// Hub.Subscribe itself is not idempotent: every call opens a new
// subscriber slot. ConnectionSubscriptions layers per-connection
// idempotency for subscribe/unsubscribe on top of it.
type Hub struct {
	mu   sync.RWMutex
	subs map[model.ExecutionId]map[uint64]*outbox
	seq  atomic.Uint64
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[model.ExecutionId]map[uint64]*outbox)}
}

// Subscribe opens a new outbox for executionId and returns a receive-only
// channel plus a cancel function. Calling Subscribe again for the same
// executionId from the same caller is the caller's responsibility to avoid
// duplicating (the hub itself always creates a fresh subscriber slot); use
// ConnectionSubscriptions to get per-connection idempotency.
func (h *Hub) Subscribe(ctx context.Context, executionId model.ExecutionId) (<-chan Event, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	id := h.seq.Add(1)
	ob := &outbox{ch: make(chan Event, defaultOutboxBuffer)}

	h.mu.Lock()
	if h.subs[executionId] == nil {
		h.subs[executionId] = make(map[uint64]*outbox)
	}
	h.subs[executionId][id] = ob
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs[executionId], id)
		if len(h.subs[executionId]) == 0 {
			delete(h.subs, executionId)
		}
		h.mu.Unlock()
	}

	return ob.ch, cancel, nil
}

// Publish fans event out to every subscriber of event.ExecutionId.
// NODE_* and EXECUTION_* events are never dropped: Publish blocks briefly
// only up to ctx's deadline/cancellation on a full channel for those
// kinds. LOG_EMITTED is non-essential and is dropped on a full channel
// instead of blocking, matching the contract's backpressure rule.
func (h *Hub) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.RLock()
	obs := make([]*outbox, 0, len(h.subs[event.ExecutionId]))
	for _, ob := range h.subs[event.ExecutionId] {
		obs = append(obs, ob)
	}
	h.mu.RUnlock()

	essential := event.Kind != model.EventLogEmitted
	for _, ob := range obs {
		if essential {
			select {
			case ob.ch <- event:
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		select {
		case ob.ch <- event:
		default:
			// backpressure: drop the non-essential log line.
		}
	}
	return nil
}

// ConnectionSubscriptions tracks which execution-ids a single connection
// has subscribed to, so repeated subscribe/unsubscribe messages for the
// same id are no-ops as the protocol requires.
type ConnectionSubscriptions struct {
	hub *Hub

	mu     sync.Mutex
	active map[model.ExecutionId]func()
}

// NewConnectionSubscriptions builds tracking state for one connection
// backed by hub.
func NewConnectionSubscriptions(hub *Hub) *ConnectionSubscriptions {
	return &ConnectionSubscriptions{hub: hub, active: make(map[model.ExecutionId]func())}
}

// Subscribe subscribes the connection to executionId, returning its event
// channel. If the connection is already subscribed, the existing
// subscription is kept and Subscribe returns a nil channel and a nil error
// (no-op).
func (c *ConnectionSubscriptions) Subscribe(ctx context.Context, executionId model.ExecutionId) (<-chan Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, already := c.active[executionId]; already {
		return nil, nil
	}

	ch, cancel, err := c.hub.Subscribe(ctx, executionId)
	if err != nil {
		return nil, err
	}
	c.active[executionId] = cancel
	return ch, nil
}

// Unsubscribe cancels the connection's subscription to executionId, if
// any. Unsubscribing an id that was never subscribed is a no-op.
func (c *ConnectionSubscriptions) Unsubscribe(executionId model.ExecutionId) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cancel, ok := c.active[executionId]; ok {
		cancel()
		delete(c.active, executionId)
	}
}

// Close unsubscribes from every execution-id this connection is watching.
func (c *ConnectionSubscriptions) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, cancel := range c.active {
		cancel()
		delete(c.active, id)
	}
}
