// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package eventbus

import (
	"errors"
	"fmt"
	"time"

	goJSON "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Event types.
const (
	TypeInteractionLogged = "interaction_logged"
	TypeCandidatesUpdated = "candidates_updated"
	TypeCarouselPromoted  = "carousel_promoted"
)

// TopicPrefix prefixes every event topic.
const TopicPrefix = "curator."

// Types lists every event type the router forwards.
var Types = []string{TypeInteractionLogged, TypeCandidatesUpdated, TypeCarouselPromoted}

// ErrInvalidEvent is returned when an event fails validation.
var ErrInvalidEvent = errors.New("invalid event")

// Event is the envelope of every message on the bus. Its JSON form is also
// what WebSocket clients receive.
type Event struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	SessionID string            `json:"sessionId,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Data      goJSON.RawMessage `json:"data"`
}

// NewEvent builds an event with a fresh id, encoding data as its payload.
func NewEvent(eventType, sessionID string, data interface{}) (*Event, error) {
	raw, err := goJSON.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}, nil
}

// Topic returns the topic the event is published on.
func (e *Event) Topic() string {
	return Topic(e.Type)
}

// Topic returns the topic for an event type.
func Topic(eventType string) string {
	return TopicPrefix + eventType
}

// Validate checks required envelope fields.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidEvent)
	}
	if e.Type == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidEvent)
	}
	if len(e.Data) == 0 {
		return fmt.Errorf("%w: missing data", ErrInvalidEvent)
	}
	return nil
}

// Marshal encodes the event.
func (e *Event) Marshal() ([]byte, error) {
	return goJSON.Marshal(e)
}

// UnmarshalEvent decodes and validates an event.
func UnmarshalEvent(data []byte) (*Event, error) {
	var e Event
	if err := goJSON.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// Decode unmarshals the event payload into out.
func (e *Event) Decode(out interface{}) error {
	return goJSON.Unmarshal(e.Data, out)
}
