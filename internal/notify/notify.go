// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Interaction is the payload of an interaction-logged notification.
type Interaction struct {
	SessionID    string    `json:"sessionId"`
	UserID       string    `json:"userId,omitempty"`
	ContentID    string    `json:"contentId"`
	ContentTitle string    `json:"contentTitle"`
	Action       string    `json:"action"`
	Detail       string    `json:"detail,omitempty"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// Message formats the confirmation shown to the operator.
func Message(title string) string {
	return fmt.Sprintf("'%s' interaction logged for recommendations.", title)
}

// Sink receives interaction notifications.
type Sink interface {
	OnInteractionLogged(ctx context.Context, n Interaction) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, n Interaction) error

// OnInteractionLogged calls f.
func (f SinkFunc) OnInteractionLogged(ctx context.Context, n Interaction) error {
	return f(ctx, n)
}

type discard struct{}

func (discard) OnInteractionLogged(context.Context, Interaction) error { return nil }

// Discard drops every notification.
var Discard Sink = discard{}

type multi []Sink

// Multi fans a notification out to every sink. All sinks are called even
// when one fails; the errors are joined.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multi) OnInteractionLogged(ctx context.Context, n Interaction) error {
	var errs []error
	for _, s := range m {
		if err := s.OnInteractionLogged(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
