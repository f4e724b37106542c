package web

import (
	"errors"
	"net/http"

	"binder/internal/app"
	"binder/internal/core"

	"github.com/go-chi/chi/v5"
)

// vendorSheet handles GET /api/vendors/sheet: the merged master sheet with
// optional search and column sorting. Query parameters:
//
//	search    free-text term matched across the display fields
//	sort      column key clicked; triggers the toggle policy
//	prev_sort previous column key, with prev_dir, so the toggle is stateless
func (h *Handler) vendorSheet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := app.VendorSheetRequest{
		Search:  q.Get("search"),
		SortKey: q.Get("sort"),
		PrevSort: core.SortState{
			Key:       q.Get("prev_sort"),
			Direction: core.SortDirection(q.Get("prev_dir")),
		},
		HasClick: q.Get("sort") != "",
	}

	result, err := h.svc.VendorSheet(r.Context(), req)
	if err != nil {
		writeError(w, r, "failed to load vendor sheet", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// getVendor handles GET /api/vendors/{code}.
func (h *Handler) getVendor(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	record, err := h.svc.GetVendor(r.Context(), code)
	if err != nil {
		if errors.Is(err, core.ErrVendorNotFound) {
			writeError(w, r, "vendor not found", "NOT_FOUND", http.StatusNotFound)
			return
		}
		writeError(w, r, "failed to load vendor", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, record)
}

// deleteVendor handles DELETE /api/vendors/{code}. Deletion is permanent and
// must be explicitly confirmed with ?confirm=true; without it the request is
// refused so a stray click can never destroy a record.
func (h *Handler) deleteVendor(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	confirmed := r.URL.Query().Get("confirm") == "true"

	err := h.svc.DeleteVendor(r.Context(), code, confirmed)
	switch {
	case err == nil:
		writeJSON(w, map[string]string{"message": "Vendor deleted", "code": code})
	case errors.Is(err, core.ErrConfirmationRequired):
		writeError(w, r, "deletion must be confirmed", "CONFIRMATION_REQUIRED", http.StatusConflict)
	case errors.Is(err, core.ErrVendorNotFound):
		writeError(w, r, "vendor not found", "NOT_FOUND", http.StatusNotFound)
	default:
		writeError(w, r, "failed to delete vendor", "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
