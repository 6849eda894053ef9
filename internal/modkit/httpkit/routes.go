package httpkit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wordlebot/internal/platform/net/middleware"
)

// MountAPIV1 mounts a subrouter at /api/v1 with mw, then lets mount register modules on it
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/v1", func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// CommonStack is the middleware every API module runs behind
func CommonStack() []func(http.Handler) http.Handler { return middleware.Defaults() }

// AdminOnly gates a route group on the admin header
func AdminOnly(allowed func(userID string) bool) func(http.Handler) http.Handler {
	return middleware.Admin(allowed)
}

func chiParam(r *http.Request, name string) string { return chi.URLParam(r, name) }
