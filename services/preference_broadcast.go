package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"smartbuddy/model"

	"github.com/redis/go-redis/v9"
)

// PreferenceBroadcaster fans preference changes out to every connected view
// of the same account. It replaces the old client-side localStorage polling
// with one pub/sub channel: Save publishes, OnChange subscribes. Without a
// Redis client changes still reach listeners in the same process.
type PreferenceBroadcaster struct {
	client *redis.Client

	mu        sync.Mutex
	nextID    int
	listeners map[string]map[int]func(*model.Preferences)
	subs      map[string]*redis.PubSub
}

var GlobalPreferenceBroadcaster *PreferenceBroadcaster

func NewPreferenceBroadcaster(client *redis.Client) *PreferenceBroadcaster {
	return &PreferenceBroadcaster{
		client:    client,
		listeners: make(map[string]map[int]func(*model.Preferences)),
		subs:      make(map[string]*redis.PubSub),
	}
}

func prefChannel(userID string) string {
	return fmt.Sprintf("preferences:%s", userID)
}

// Publish announces a saved preference change for the user.
func (b *PreferenceBroadcaster) Publish(ctx context.Context, prefs *model.Preferences) error {
	if b.client == nil {
		b.deliver(prefs)
		return nil
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %v", err)
	}
	if err := b.client.Publish(ctx, prefChannel(prefs.UserID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish preference change: %v", err)
	}
	return nil
}

// OnChange registers a listener for one user's preference changes and
// returns its unsubscribe. The first listener for a user starts the
// underlying subscription; unsubscribing the last one tears it down.
func (b *PreferenceBroadcaster) OnChange(ctx context.Context, userID string, listener func(*model.Preferences)) func() {
	b.mu.Lock()

	id := b.nextID
	b.nextID++
	if b.listeners[userID] == nil {
		b.listeners[userID] = make(map[int]func(*model.Preferences))
	}
	first := len(b.listeners[userID]) == 0
	b.listeners[userID][id] = listener

	if first && b.client != nil {
		sub := b.client.Subscribe(ctx, prefChannel(userID))
		b.subs[userID] = sub
		go b.pump(userID, sub)
	}
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners[userID], id)
		if len(b.listeners[userID]) > 0 {
			return
		}
		delete(b.listeners, userID)
		if sub, ok := b.subs[userID]; ok {
			delete(b.subs, userID)
			if err := sub.Close(); err != nil {
				log.Printf("Failed to close preference subscription: %v", err)
			}
		}
	}
}

// pump forwards one user's subscription to the registered listeners. It
// exits when the subscription closes.
func (b *PreferenceBroadcaster) pump(userID string, sub *redis.PubSub) {
	for msg := range sub.Channel() {
		var prefs model.Preferences
		if err := json.Unmarshal([]byte(msg.Payload), &prefs); err != nil {
			log.Printf("Failed to decode preference change: %v", err)
			continue
		}
		prefs.UserID = userID
		b.deliver(&prefs)
	}
}

func (b *PreferenceBroadcaster) deliver(prefs *model.Preferences) {
	b.mu.Lock()
	fns := make([]func(*model.Preferences), 0, len(b.listeners[prefs.UserID]))
	for _, fn := range b.listeners[prefs.UserID] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(prefs)
	}
}

func (b *PreferenceBroadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for userID, sub := range b.subs {
		delete(b.subs, userID)
		if err := sub.Close(); err != nil {
			return err
		}
	}
	b.listeners = make(map[string]map[int]func(*model.Preferences))
	return nil
}
