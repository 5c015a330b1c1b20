// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package notify delivers the user-visible confirmation emitted after a
like, download, or share is recorded in a preview session.

The preview layer depends only on the Sink interface. Concrete sinks
compose:

	sink := notify.Multi(
	    notify.NewLogSink(logger),
	    notify.NewThrottledSink(notify.NewBusSink(bus), 20, 40),
	)

Async wraps any sink with a bounded queue drained by a supervised worker,
so recording an action never blocks on delivery. A full queue drops the
notification and counts it in metrics.

Delivery failures are logged and never surface to the caller: a failed
notification does not undo the recorded interaction.
*/
package notify
