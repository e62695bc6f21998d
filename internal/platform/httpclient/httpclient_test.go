package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/echo" || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", r.URL.Path, r.Header.Get("Content-Type"))
		}
		if r.Header.Get("User-Agent") != "pet-health-test" || r.Header.Get("X-Extra") != "1" {
			t.Errorf("missing headers: %v", r.Header)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"got": in["name"]})
	}))
	defer srv.Close()

	c, err := New(time.Second, WithBaseURL(srv.URL+"/"), WithUserAgent("pet-health-test"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodPost, "echo", map[string]string{"X-Extra": "1"}, map[string]string{"name": "rex"}, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if out["got"] != "rex" {
		t.Fatalf("unexpected response %v", out)
	}
}

func TestDoJSON_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := New(0)
	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
	if StatusCode(err) != http.StatusBadGateway {
		t.Fatalf("expected 502, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	c, _ := New(0)
	if _, err := c.resolve("relative"); err == nil {
		t.Fatalf("relative path without base url should fail")
	}
	if _, err := New(0, WithBaseURL("::bad")); err == nil {
		t.Fatalf("expected invalid base url error")
	}
}
