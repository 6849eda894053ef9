package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "wordlebot/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMount(t *testing.T) {
	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false)
	rec := httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled = %d", rec.Code)
	}

	on := phttp.AdaptChi(chi.NewRouter())
	Mount(on, true)

	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var doc struct {
		Info  map[string]string         `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Info["title"] != "wordlebot" {
		t.Fatalf("info = %v", doc.Info)
	}
	if _, ok := doc.Paths["/api/v1/bot/roundup"]["post"]; !ok {
		t.Fatalf("roundup route missing from doc")
	}
}
