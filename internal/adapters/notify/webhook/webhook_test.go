package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
	"pet-health/internal/platform/httpclient"
)

func TestSink_Send(t *testing.T) {
	var got store.Change
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s, err := New(srv.URL+"/hooks/pets", "secret", time.Second)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	c := store.Change{PetID: "milo", Category: records.CategoryWeight, Kind: store.ChangeSaved, Revision: 7}
	if err := s.Send(context.Background(), c); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got.PetID != "milo" || got.Category != records.CategoryWeight || got.Revision != 7 {
		t.Fatalf("unexpected body %+v", got)
	}
	if auth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", auth)
	}
}

func TestSink_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s, err := New(srv.URL, "", time.Second)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Send(context.Background(), store.Change{PetID: "rex"}); httpclient.StatusCode(err) != http.StatusInternalServerError {
		t.Fatalf("expected 500 error, got %v", err)
	}
}

func TestNew_RequiresURL(t *testing.T) {
	if _, err := New("", "", 0); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
