// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewError_JSONShape(t *testing.T) {
	t.Parallel()

	resp := NewError(ErrCodeNotFound, "session not found", map[string]interface{}{"id": "s-1"})
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{`"status":"error"`, `"code":"NOT_FOUND"`, `"id":"s-1"`, `"timestamp"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestNewSuccess_OmitsError(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewSuccess([]int{1, 2}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)
	if strings.Contains(out, `"error"`) || !strings.Contains(out, `"data":[1,2]`) {
		t.Errorf("unexpected body %s", out)
	}
}
