package websocket

import (
	"testing"
	"time"

	"churchhub-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestSendDeliversToRegisteredClient(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	client := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- client

	hub.Send(client.UserID, model.Notification{ID: uuid.New(), UserID: client.UserID, Title: "Disagreement recorded"})

	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), "Disagreement recorded")
	case <-time.After(time.Second):
		t.Fatal("no message delivered to client")
	}
}

func TestSendToBackedUpClientEvictsWithoutPanic(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()

	// No reader and no buffer: the first Send hits the full-buffer path.
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte)}
	hub.register <- client

	hub.Send(userID, model.Notification{ID: uuid.New(), UserID: userID})

	// Run closes the channel exactly once while evicting the client.
	select {
	case _, open := <-client.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("client channel was not closed on eviction")
	}

	// The evicted client is gone; another send for the same user is a no-op.
	hub.Send(userID, model.Notification{ID: uuid.New(), UserID: userID})

	// A late unregister (e.g. the read pump winding down) finds nothing to
	// close and must not panic either.
	hub.unregister <- client

	fresh := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	hub.register <- fresh
	hub.Send(userID, model.Notification{ID: uuid.New(), UserID: userID})

	select {
	case _, open := <-fresh.Send:
		assert.True(t, open)
	case <-time.After(time.Second):
		t.Fatal("hub stopped delivering after evicting a client")
	}
}
