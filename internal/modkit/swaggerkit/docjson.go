package swaggerkit

import (
	"encoding/json"
	"net/http"

	"wordlebot/internal/core/version"
)

type op struct {
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

// paths lists the routes mounted under /api/v1; handler annotations carry the detail
var paths = map[string]map[string]op{
	"/api/v1/meta/health":             {"get": {"Health check", []string{"Meta"}}},
	"/api/v1/meta/ready":              {"get": {"Readiness probe", []string{"Meta"}}},
	"/api/v1/meta/version":            {"get": {"Build and version info", []string{"Meta"}}},
	"/api/v1/bot/messages":            {"post": {"Ingest a submissions channel message", []string{"Bot"}}},
	"/api/v1/bot/announcements":       {"post": {"Ingest a winner channel announcement", []string{"Bot"}}},
	"/api/v1/bot/days/{day}":          {"get": {"Ranked results for a day", []string{"Bot"}}},
	"/api/v1/bot/days/{day}/announce": {"post": {"Announce a day (admin)", []string{"Bot"}}},
	"/api/v1/bot/answers/{word}":      {"get": {"When a word was the answer", []string{"Bot"}}},
	"/api/v1/bot/roundup":             {"post": {"Season report from announcement texts", []string{"Bot"}}},
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	doc := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]string{"title": "wordlebot", "version": version.Info("").Version},
		"paths":   paths,
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(doc)
}
