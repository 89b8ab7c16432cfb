// Package events is the change feed: repositories publish row changes and
// views subscribe to the tables they display.
package events

import (
	"context"
	"log/slog"
	"sync"

	"rent-assist/domain"
)

// Handler is called for each matching event. It runs on the publisher's
// goroutine and must not block.
type Handler func(domain.ChangeEvent)

// Filter narrows a subscription. An empty Key matches every record.
type Filter struct {
	Key string
}

func (f Filter) matches(e domain.ChangeEvent) bool {
	return f.Key == "" || f.Key == e.Key
}

// Token identifies a subscription for Unsubscribe.
type Token uint64

// Forwarder receives every published event, e.g. to ship it to a broker.
type Forwarder interface {
	Forward(ctx context.Context, event domain.ChangeEvent) error
}

type subscription struct {
	table   string
	filter  Filter
	handler Handler
}

type Hub struct {
	mu        sync.RWMutex
	next      Token
	subs      map[Token]subscription
	forwarder Forwarder
	logger    *slog.Logger
}

// NewHub creates a hub. forwarder may be nil.
func NewHub(forwarder Forwarder, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:      make(map[Token]subscription),
		forwarder: forwarder,
		logger:    logger,
	}
}

// Subscribe registers handler for changes to table that match filter.
func (h *Hub) Subscribe(table string, filter Filter, handler Handler) Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	h.subs[h.next] = subscription{table: table, filter: filter, handler: handler}
	return h.next
}

// Unsubscribe removes the subscription. It reports whether the token was
// registered.
func (h *Hub) Unsubscribe(token Token) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, ok := h.subs[token]
	delete(h.subs, token)
	return ok
}

// Publish delivers event to matching subscribers, then to the forwarder.
// A forwarder failure is returned after local delivery has completed.
func (h *Hub) Publish(ctx context.Context, event domain.ChangeEvent) error {
	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs))
	for _, sub := range h.subs {
		if sub.table == event.Table && sub.filter.matches(event) {
			handlers = append(handlers, sub.handler)
		}
	}
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}

	if h.forwarder == nil {
		return nil
	}
	if err := h.forwarder.Forward(ctx, event); err != nil {
		h.logger.Error("forward change event",
			"table", event.Table,
			"action", event.Action,
			"key", event.Key,
			"error", err,
		)
		return err
	}
	return nil
}

// Subscribers returns the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
