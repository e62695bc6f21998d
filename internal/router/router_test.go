package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-health/internal/adapters/storage/memory"
	"pet-health/internal/domain/healthlog"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/sensors"
	"pet-health/internal/domain/store"
	"pet-health/internal/platform/metrics"
	"pet-health/internal/router"
)

func newServer(t *testing.T, token string) *httptest.Server {
	t.Helper()

	m := metrics.New()
	st := store.New(memory.NewSnapshotStore(), store.Options{Metrics: m})
	m.WatchBus(st.Bus())
	petsSvc := pets.NewService(memory.NewPetRepo())

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Store:     st,
		Pets:      petsSvc,
		HealthLog: healthlog.NewService(st, petsSvc, nil),
		Tracker:   sensors.NewTracker(st, petsSvc, sensors.TrackerOptions{Observer: m}),
		Metrics:   m,
		APIToken:  token,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_VisitToSensors(t *testing.T) {
	ts := newServer(t, "")

	// 1) Registrar mascota
	petID := createPet(t, ts.URL, map[string]any{
		"name": "Milo",
		"type": "cat",
		"medications": []map[string]any{
			{"id": "med-1", "name": "Apoquel", "dosage": "16", "unit": "mg", "frequency": "daily"},
		},
	})

	// 2) Visita confirmada por nombre
	var visit struct {
		VisitID string `json:"visit_id"`
		PetID   string `json:"pet_id"`
		PetName string `json:"pet_name"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/visits", "", map[string]any{
			"pet":      "milo",
			"did_poop": true,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 logging visit, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &visit)
		if visit.PetID != petID || visit.PetName != "Milo" {
			t.Fatalf("unexpected visit response %+v", visit)
		}
	}

	// 3) Dosis de medicamento
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/medications", "", map[string]any{"medication_id": "med-1"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 logging dose, got %d body=%s", st, string(body))
		}
	}

	// 4) Sensores por nombre
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/Milo/sensors", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 sensors, got %d body=%s", st, string(body))
		}
		var snap struct {
			PetID       string `json:"pet_id"`
			VisitsToday int    `json:"daily_visit_count"`
			PoopToday   int    `json:"daily_poop_count"`
			Consistency string `json:"last_poop_consistency"`
			Medications []struct {
				Name       string `json:"medication_name"`
				DosesToday int    `json:"doses_today"`
			} `json:"medications"`
		}
		mustUnmarshal(t, body, &snap)
		if snap.PetID != petID || snap.VisitsToday != 1 || snap.PoopToday != 1 || snap.Consistency != "normal" {
			t.Fatalf("unexpected sensors %+v", snap)
		}
		if len(snap.Medications) != 1 || snap.Medications[0].DosesToday != 1 {
			t.Fatalf("unexpected medication sensors %+v", snap.Medications)
		}
	}

	// 5) Borrar la visita y volver a mirar los sensores
	{
		st, body := doReq(t, ts.URL, "DELETE", "/visits/"+visit.VisitID, "", nil)
		if st != http.StatusOK && st != http.StatusNoContent {
			t.Fatalf("expected delete ok, got %d body=%s", st, string(body))
		}
		_, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/sensors", "", nil)
		var snap struct {
			VisitsToday int `json:"daily_visit_count"`
		}
		mustUnmarshal(t, body, &snap)
		if snap.VisitsToday != 0 {
			t.Fatalf("expected 0 visits after delete, got %d", snap.VisitsToday)
		}
	}

	// 6) Métricas expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		if !strings.Contains(string(body), `pet_health_store_persist_duration_seconds_count{category="visits",op="append"} 1`) {
			t.Fatalf("expected visits append in metrics, got:\n%s", string(body))
		}
	}
}

func TestHTTP_UnknownPetSensors404(t *testing.T) {
	ts := newServer(t, "")

	st, _ := doReq(t, ts.URL, "GET", "/pets/ghost/sensors", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
}

func TestHTTP_SwaggerDocumentsRoutes(t *testing.T) {
	ts := newServer(t, "")

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 for doc.json, got %d", st)
	}

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	mustUnmarshal(t, body, &doc)

	want := map[string][]string{
		"/visits":                   {"get", "post"},
		"/visits/{visitID}":         {"patch", "delete"},
		"/pets/{petID}/sensors":     {"get"},
		"/pets/{petID}/medications": {"post"},
		"/pets/{petID}/logs":        {"post"},
		"/pets":                     {"get", "post"},
	}
	for path, methods := range want {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Fatalf("doc.json missing path %s", path)
		}
		for _, m := range methods {
			if _, ok := ops[m]; !ok {
				t.Fatalf("doc.json missing %s %s", m, path)
			}
		}
	}
	if _, ok := doc.Definitions["sensors.Snapshot"]; !ok {
		t.Fatalf("doc.json missing sensors.Snapshot definition")
	}
}

func TestHTTP_APIToken(t *testing.T) {
	ts := newServer(t, "s3cret")

	if st, _ := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("health must stay open, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/visits", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/visits", "s3cret", nil); st != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", st)
	}
}

func createPet(t *testing.T, baseURL string, body map[string]any) string {
	t.Helper()

	st, respBody := doReq(t, baseURL, "POST", "/pets", "", body)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating pet, got %d body=%s", st, string(respBody))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, respBody, &resp)
	if resp.ID == "" {
		t.Fatalf("expected pet id in response")
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(b))
	}
}
