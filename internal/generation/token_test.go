package generation_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/generation"
)

func TestTokenCache_ReusesUnexpiredToken(t *testing.T) {
	var exchanges atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "urn:ibm:params:oauth:grant-type:apikey" {
			t.Errorf("unexpected grant_type %q", got)
		}
		if got := r.Form.Get("apikey"); got != "my-api-key" {
			t.Errorf("unexpected apikey %q", got)
		}
		n := exchanges.Add(1)
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":3600}`, n)
	}))
	defer server.Close()

	cache := generation.NewTokenCache(server.URL)

	first, err := cache.Bearer(context.Background(), "my-api-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.Bearer(context.Background(), "my-api-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != "token-1" || second != "token-1" {
		t.Errorf("got %q then %q, want the cached token both times", first, second)
	}
	if exchanges.Load() != 1 {
		t.Errorf("expected a single exchange, got %d", exchanges.Load())
	}
}

func TestTokenCache_RefreshesExpiredToken(t *testing.T) {
	var exchanges atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := exchanges.Add(1)
		// expires_in below the expiry slack, so the token is already stale
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":1}`, n)
	}))
	defer server.Close()

	cache := generation.NewTokenCache(server.URL)

	if _, err := cache.Bearer(context.Background(), "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.Bearer(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second != "token-2" {
		t.Errorf("got %q, want a freshly exchanged token", second)
	}
	if exchanges.Load() != 2 {
		t.Errorf("expected two exchanges, got %d", exchanges.Load())
	}
}

func TestTokenCache_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Non_200_Status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "Empty_Access_Token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"access_token":"","expires_in":3600}`)
			},
		},
		{
			name: "Malformed_Body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `not json`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			if _, err := generation.NewTokenCache(server.URL).Bearer(context.Background(), "k"); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
