package feed

import (
	"context"
	"sync"
	"time"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
)

const subscriberBuffer = 16

// Broker - fans fresh notification rows out to per-user subscribers. Delivery
// is at-most-once and best-effort: a subscriber that cannot keep up has events
// dropped, reconnecting readers re-sync through the list endpoint.
type Broker struct {
	Notifications storage.NotificationsStorage
	PollInterval  time.Duration

	mu          sync.RWMutex
	subscribers map[string]map[chan models.NotificationData]struct{}
	lastSeen    time.Time

	waitGroup sync.WaitGroup
	quitChan  chan struct{}
}

// NewBroker - broker creation
func NewBroker(notifications storage.NotificationsStorage) *Broker {
	return &Broker{
		Notifications: notifications,
		PollInterval:  2 * time.Second,
		subscribers:   make(map[string]map[chan models.NotificationData]struct{}),
		lastSeen:      time.Now(),
		quitChan:      make(chan struct{}),
	}
}

// Start - runs the poll loop in the background
func (b *Broker) Start(ctx context.Context) {
	b.waitGroup.Add(1)
	go b.Run(ctx)
}

// Stop - stops the poll loop and waits for it
func (b *Broker) Stop() {
	close(b.quitChan)
	b.waitGroup.Wait()
}

func (b *Broker) Run(ctx context.Context) {
	defer b.waitGroup.Done()

	ticker := time.NewTicker(b.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.quitChan:
			logger.Info("Feed broker signal stop")
			return
		case <-ticker.C:
			b.Poll(ctx)
		}
	}
}

// Subscribe - registers a listener for one user's events, the returned cancel
// must be called when the consumer goes away
func (b *Broker) Subscribe(userID string) (<-chan models.NotificationData, func()) {
	ch := make(chan models.NotificationData, subscriberBuffer)

	b.mu.Lock()
	if b.subscribers[userID] == nil {
		b.subscribers[userID] = make(map[chan models.NotificationData]struct{})
	}
	b.subscribers[userID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subscribers[userID], ch)
		if len(b.subscribers[userID]) == 0 {
			delete(b.subscribers, userID)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Poll - fetches rows inserted since the last pass and dispatches them
func (b *Broker) Poll(ctx context.Context) {
	b.mu.RLock()
	idle := len(b.subscribers) == 0
	b.mu.RUnlock()
	if idle {
		// nobody listening, skip the query but keep the cursor moving
		b.mu.Lock()
		b.lastSeen = time.Now()
		b.mu.Unlock()
		return
	}

	b.mu.RLock()
	since := b.lastSeen
	b.mu.RUnlock()

	notifications, err := b.Notifications.GetNotificationsAfter(ctx, since)
	if err != nil {
		logger.Error("Feed poll failed", err)
		return
	}

	for _, notification := range notifications {
		b.Dispatch(notification)
		b.mu.Lock()
		if notification.CreatedAt.After(b.lastSeen) {
			b.lastSeen = notification.CreatedAt
		}
		b.mu.Unlock()
	}
}

// Dispatch - non-blocking fan-out to the user's subscribers
func (b *Broker) Dispatch(notification models.NotificationData) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers[notification.UserID] {
		select {
		case ch <- notification:
		default:
			// slow consumer, drop the event
		}
	}
}
