// Package web is the HTTP surface of the guestbook: the HTML listing and
// submission form, a JSON API, embedded static assets, and request logging.
// Handlers translate guestbook.Service results into responses; validation
// failures become 400s, everything else a 500.
package web

import (
	"embed"
	"net/http"

	"github.com/lehrcode/guestbook/internal/guestbook"
)

//go:embed static
var staticFiles embed.FS

// StaticHandler serves the embedded static assets under /static/.
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFiles))
}

// httpError writes the response for a failed service call. Validation
// failures carry their reason to the client; storage failures are logged
// and hidden behind a generic 500.
func httpError(w http.ResponseWriter, r *http.Request, err error) {
	if guestbook.IsValidation(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logFrom(r).Error("request failed", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
