package web

import (
	"net/http"

	"github.com/lehrcode/guestbook/internal/guestbook"
)

// FormHandler accepts the submission form and redirects back to the listing.
type FormHandler struct {
	svc *guestbook.Service
}

func NewFormHandler(svc *guestbook.Service) *FormHandler {
	return &FormHandler{svc: svc}
}

func (h *FormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Submit(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("message"))
	if err != nil {
		httpError(w, r, err)
		return
	}

	logFrom(r).Info("entry created", "id", entry.ID)
	http.Redirect(w, r, "/", http.StatusFound)
}
