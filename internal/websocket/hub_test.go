// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package websocket

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/curator/internal/logging"
)

func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

// newBareClient builds a client without a connection for hub-only tests.
func newBareClient(hub *Hub, sessionID string, buffer int) *Client {
	return &Client{
		id:        clientIDCounter.Add(1),
		sessionID: sessionID,
		hub:       hub,
		send:      make(chan Message, buffer),
	}
}

func runHub(t *testing.T, hub *Hub) (cancel func(), done <-chan error) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	ch := make(chan error, 1)
	go func() { ch <- hub.RunWithContext(ctx) }()
	t.Cleanup(stop)
	return stop, ch
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case m, ok := <-c.send:
		if !ok {
			t.Fatal("client channel closed")
		}
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

func expectNone(t *testing.T, c *Client) {
	t.Helper()
	select {
	case m := <-c.send:
		t.Fatalf("unexpected message %+v", m)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	runHub(t, hub)

	a := newBareClient(hub, "", 4)
	b := newBareClient(hub, "", 4)
	hub.Register <- a
	hub.Register <- b

	hub.BroadcastJSON(MessageTypeCandidatesUpdated, map[string]int{"version": 2})

	for _, c := range []*Client{a, b} {
		if m := receive(t, c); m.Type != MessageTypeCandidatesUpdated {
			t.Errorf("client %d got type %q", c.ID(), m.Type)
		}
	}
	if hub.GetClientCount() != 2 {
		t.Errorf("GetClientCount() = %d, want 2", hub.GetClientCount())
	}
}

func TestHub_SessionFilter(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	runHub(t, hub)

	all := newBareClient(hub, "", 4)
	mine := newBareClient(hub, "s-1", 4)
	other := newBareClient(hub, "s-2", 4)
	for _, c := range []*Client{all, mine, other} {
		hub.Register <- c
	}

	hub.BroadcastToSession("s-1", MessageTypeInteractionLogged, "x")

	if m := receive(t, all); m.SessionID != "s-1" {
		t.Errorf("unscoped client got %+v", m)
	}
	receive(t, mine)
	expectNone(t, other)

	hub.BroadcastJSON(MessageTypePong, nil)
	receive(t, other)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	runHub(t, hub)

	c := newBareClient(hub, "", 1)
	hub.Register <- c
	hub.Unregister <- c

	select {
	case _, ok := <-c.send:
		if ok {
			t.Error("send channel delivered a message instead of closing")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel not closed")
	}
	// Unregistering twice must not panic on a closed channel.
	hub.Unregister <- c
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	runHub(t, hub)

	slow := newBareClient(hub, "", 1)
	hub.Register <- slow

	hub.BroadcastJSON(MessageTypePong, 1)
	hub.BroadcastJSON(MessageTypePong, 2)

	deadline := time.Now().Add(2 * time.Second)
	for hub.GetClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow client was not dropped")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_BroadcastRaw(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	runHub(t, hub)

	c := newBareClient(hub, "s-7", 4)
	hub.Register <- c

	hub.BroadcastRaw([]byte(`not json`))
	hub.BroadcastRaw([]byte(`{"id":"1","data":{}}`))
	hub.BroadcastRaw([]byte(`{"id":"2","type":"carousel_promoted","sessionId":"s-7","data":{"position":1}}`))

	m := receive(t, c)
	if m.Type != MessageTypeCarouselPromoted || m.SessionID != "s-7" {
		t.Fatalf("message = %+v", m)
	}
	raw, err := MarshalMessage(m)
	if err != nil {
		t.Fatalf("MarshalMessage() error = %v", err)
	}
	var decoded struct {
		Data struct {
			Position int `json:"position"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Data.Position != 1 {
		t.Errorf("payload not passed through: %s", raw)
	}
	expectNone(t, c)
}

func TestHub_BroadcastBufferFull(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	for i := 0; i < broadcastBuffer; i++ {
		if !hub.enqueue(Message{Type: MessageTypePong}) {
			t.Fatalf("enqueue %d rejected before buffer full", i)
		}
	}
	if hub.enqueue(Message{Type: MessageTypePong}) {
		t.Error("enqueue accepted past buffer capacity")
	}
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	cancel, done := runHub(t, hub)

	c := newBareClient(hub, "", 1)
	hub.Register <- c
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
	if hub.GetClientCount() != 0 {
		t.Errorf("clients remaining = %d", hub.GetClientCount())
	}
	if _, ok := <-c.send; ok {
		t.Error("client channel left open")
	}
	if hub.String() != "websocket-hub" {
		t.Errorf("String() = %q", hub.String())
	}
}

func TestGetShutdownReason(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(ctx); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled reason = %q", got)
	}

	ctx, cancel = context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	if got := getShutdownReason(ctx); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline reason = %q", got)
	}
}
