// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLegacyRedirect(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	expectedStatusCode := http.StatusPermanentRedirect
	expectedLocation := "/read/gentle-breathing-ladder"

	redirectWithQueryParam("/read/", "slug").ServeHTTP(
		rr,
		httptest.NewRequest(http.MethodGet, "/article?slug=gentle-breathing-ladder", nil))

	if rr.Code != expectedStatusCode {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, expectedStatusCode)
	}

	location := rr.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("handler returned wrong Location header: got %q want %q", location, expectedLocation)
	}
}
