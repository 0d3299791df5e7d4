// Package events implements the realtime change feed: an in-process
// publish/subscribe hub fanning out ledger events to per-business
// subscribers. Delivery is best-effort and at-most-once per subscriber;
// a subscriber that falls behind or disconnects misses events and is
// expected to re-fetch current state on reconnect.
package events

import (
	"sync"

	"balanza/internal/logger"
	"balanza/internal/models"
)

// Event names pushed over the realtime channel.
const (
	EventTxCreated         = "tx_created"
	EventBalanceUpdated    = "balance_updated"
	EventCardCreditUpdated = "card_credit_updated"
)

// Event is one notification delivered to subscribers of a business.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// CardCredit is the payload of a card_credit_updated event.
type CardCredit struct {
	CardID          string `json:"card_id"`
	AvailableCredit int64  `json:"available_credit"`
}

// subscriberBuffer is how many undelivered events a subscriber may hold
// before the hub starts dropping events for it.
const subscriberBuffer = 16

// Subscription is a registered listener on a business's event stream.
type Subscription struct {
	C          <-chan Event
	businessID string
	ch         chan Event
}

// Hub fans events out to all current subscribers of a business.
// Publish never blocks: events for slow subscribers are dropped.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{} // businessID -> subscriptions
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers a listener for one business's events.
func (h *Hub) Subscribe(businessID string) *Subscription {
	ch := make(chan Event, subscriberBuffer)
	sub := &Subscription{C: ch, businessID: businessID, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[businessID] == nil {
		h.subs[businessID] = make(map[*Subscription]struct{})
	}
	h.subs[businessID][sub] = struct{}{}
	return sub
}

// Unsubscribe removes a listener and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[sub.businessID]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.businessID)
	}
	close(sub.ch)
}

// Publish delivers an event to every current subscriber of the business.
// Subscribers whose buffer is full are skipped.
func (h *Hub) Publish(businessID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[businessID] {
		select {
		case sub.ch <- event:
		default:
			logger.Get().Warnw("dropping event for slow subscriber",
				"business_id", businessID,
				"event", event.Event,
			)
		}
	}
}

// SubscriberCount returns how many listeners a business currently has.
func (h *Hub) SubscriberCount(businessID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[businessID])
}

// NotifyApplied publishes the full event set for one applied transaction:
// one tx_created, then one balance_updated or card_credit_updated per
// mutated entity. It must only be called after a successful apply; failed
// transactions never produce events.
func (h *Hub) NotifyApplied(tx *models.Transaction, balances []models.Balance, cards []models.Card) {
	h.Publish(tx.BusinessID, Event{Event: EventTxCreated, Data: tx})

	for i := range balances {
		b := balances[i]
		if b.EntityType == models.EntityTypeFund {
			h.Publish(tx.BusinessID, Event{Event: EventBalanceUpdated, Data: b})
		}
	}
	for i := range cards {
		c := cards[i]
		h.Publish(tx.BusinessID, Event{Event: EventCardCreditUpdated, Data: CardCredit{
			CardID:          c.ID,
			AvailableCredit: c.AvailableCredit,
		}})
	}
}
