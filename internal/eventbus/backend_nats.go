// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

//go:build nats

package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// newBackend returns the configured backend. For nats, an embedded server
// is started first when requested.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newBackend(cfg *Config, wmLogger watermill.LoggerAdapter, logger zerolog.Logger) (*backend, error) {
	if cfg.Backend != BackendNATS {
		return newChannelBackend(cfg, wmLogger), nil
	}

	url := cfg.NATS.URL
	var server *EmbeddedServer
	if cfg.NATS.Embedded {
		var err error
		server, err = NewEmbeddedServer(&cfg.NATS)
		if err != nil {
			return nil, err
		}
		url = server.ClientURL()
		logger.Info().Str("url", url).Msg("Embedded NATS server started")
	}

	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.NATS.MaxReconnects),
		natsgo.ReconnectWait(cfg.NATS.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Warn().Err(err).Msg("NATS disconnected")
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, wmLogger)
	if err != nil {
		shutdownServer(server)
		return nil, fmt.Errorf("create nats publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		QueueGroupPrefix: cfg.NATS.QueueGroup,
		SubscribersCount: 1,
		CloseTimeout:     cfg.Router.CloseTimeout,
		AckWaitTimeout:   30 * time.Second,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        wmNats.JetStreamConfig{Disabled: true},
	}, wmLogger)
	if err != nil {
		_ = pub.Close()
		shutdownServer(server)
		return nil, fmt.Errorf("create nats subscriber: %w", err)
	}

	return &backend{
		publisher:  pub,
		subscriber: sub,
		close: func() error {
			err := closeAll(pub.Close, sub.Close)
			shutdownServer(server)
			return err
		},
	}, nil
}

func shutdownServer(s *EmbeddedServer) {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.Shutdown(ctx)
}
