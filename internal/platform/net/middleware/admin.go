package middleware

import (
	"net/http"
	"strings"

	perr "wordlebot/internal/platform/errors"
	pnet "wordlebot/internal/platform/net"
	phttp "wordlebot/internal/platform/net/http"
)

// AdminHeader carries the chat user id an admin request acts as
const AdminHeader = "X-Wordle-Admin"

// Admin rejects requests whose AdminHeader is missing (401) or not allowed (403)
// and stores the caller id on the context for handlers
func Admin(allowed func(userID string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(AdminHeader))
			if id == "" {
				phttp.RespondError(w, r, perr.Unauthorizedf("missing %s header", AdminHeader))
				return
			}
			if allowed == nil || !allowed(id) {
				phttp.RespondError(w, r, perr.Forbiddenf("user %s is not an admin", id))
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithCaller(r.Context(), id)))
		})
	}
}
