// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAction(t *testing.T) {
	beforeCount := testutil.ToFloat64(ActionsRecorded.WithLabelValues("like"))
	beforeWeight := testutil.ToFloat64(InterestIncrement.WithLabelValues("like"))

	RecordAction("like", 0.9)
	RecordAction("like", 0)

	if got := testutil.ToFloat64(ActionsRecorded.WithLabelValues("like")) - beforeCount; got != 2 {
		t.Errorf("actions delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(InterestIncrement.WithLabelValues("like")) - beforeWeight; got < 0.899 || got > 0.901 {
		t.Errorf("weight delta = %v, want 0.9", got)
	}
}

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(CandidatesGenerated.WithLabelValues("actor"))

	RecordGeneration(2*time.Millisecond, map[string]int{"actor": 3, "liked": 0})

	if got := testutil.ToFloat64(CandidatesGenerated.WithLabelValues("actor")) - before; got != 3 {
		t.Errorf("actor delta = %v, want 3", got)
	}
}

func TestRecordStoreOperation(t *testing.T) {
	beforeOK := testutil.ToFloat64(StoreOperations.WithLabelValues("create", OutcomeSuccess))
	beforeErr := testutil.ToFloat64(StoreOperations.WithLabelValues("create", OutcomeError))

	RecordStoreOperation("create", nil)
	RecordStoreOperation("create", errors.New("boom"))

	if got := testutil.ToFloat64(StoreOperations.WithLabelValues("create", OutcomeSuccess)) - beforeOK; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(StoreOperations.WithLabelValues("create", OutcomeError)) - beforeErr; got != 1 {
		t.Errorf("error delta = %v, want 1", got)
	}
}

func TestGauges(t *testing.T) {
	SetActiveSessions(4)
	if got := testutil.ToFloat64(ActiveSessions); got != 4 {
		t.Errorf("ActiveSessions = %v, want 4", got)
	}

	SetStoreBreakerState(2)
	if got := testutil.ToFloat64(StoreBreakerState); got != 2 {
		t.Errorf("StoreBreakerState = %v, want 2", got)
	}

	SetWebSocketClients(7)
	if got := testutil.ToFloat64(WebSocketClients); got != 7 {
		t.Errorf("WebSocketClients = %v, want 7", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/routes", "200"))

	RecordAPIRequest("GET", "/api/v1/routes", 200, time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/routes", "200")) - before; got != 1 {
		t.Errorf("requests delta = %v, want 1", got)
	}
}

func TestRecordAuthzDecision(t *testing.T) {
	allow := AuthzDecisions.WithLabelValues("viewer", "preview", "read", "allow")
	deny := AuthzDecisions.WithLabelValues("viewer", "carousel", "create", "deny")
	beforeAllow, beforeDeny := testutil.ToFloat64(allow), testutil.ToFloat64(deny)

	RecordAuthzDecision("viewer", "preview", "read", true)
	RecordAuthzDecision("viewer", "carousel", "create", false)

	if got := testutil.ToFloat64(allow) - beforeAllow; got != 1 {
		t.Errorf("allow delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(deny) - beforeDeny; got != 1 {
		t.Errorf("deny delta = %v, want 1", got)
	}
}
