// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package eventbus

import (
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// backend is a publisher/subscriber pair plus its teardown.
type backend struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	close      func() error
}

// newChannelBackend returns an in-process gochannel pub/sub. The same
// instance serves as publisher and subscriber.
func newChannelBackend(cfg *Config, logger watermill.LoggerAdapter) *backend {
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.BufferSize,
	}, logger)
	return &backend{
		publisher:  ch,
		subscriber: ch,
		close:      ch.Close,
	}
}

// closeAll closes every closer and joins the errors.
func closeAll(closers ...func() error) error {
	var errs []error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
