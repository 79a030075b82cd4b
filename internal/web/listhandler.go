package web

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/lehrcode/guestbook/internal/guestbook"
)

//go:embed template.gohtml
var templateText string

var listTemplate = template.Must(template.New("template.gohtml").Parse(templateText))

// ListHandler renders the paginated entry listing.
type ListHandler struct {
	svc *guestbook.Service
}

func NewListHandler(svc *guestbook.Service) *ListHandler {
	return &ListHandler{svc: svc}
}

func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.List(r.Context(), r.FormValue("page"))
	if err != nil {
		httpError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := listTemplate.Execute(w, view); err != nil {
		logFrom(r).Error("executing template", "error", err)
	}
}
