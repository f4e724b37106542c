package web

import "net/http"

// listFAQs handles GET /api/faqs: the help-center catalogue, filtered by
// optional ?search= and ?category= query parameters.
func (h *Handler) listFAQs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, h.svc.ListFAQs(q.Get("search"), q.Get("category")))
}
