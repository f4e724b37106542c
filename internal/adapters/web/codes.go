package web

import (
	"errors"
	"net/http"

	"binder/internal/app"
	"binder/internal/core"
)

// createBuyerCode handles POST /api/codes/buyers. Validates the buyer form,
// allocates the next code and persists the record.
func (h *Handler) createBuyerCode(w http.ResponseWriter, r *http.Request) {
	var req app.GenerateBuyerCodeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.GenerateBuyerCode(r.Context(), req)
	if err != nil {
		h.writeCodeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, result)
}

// listBuyerCodes handles GET /api/codes/buyers.
func (h *Handler) listBuyerCodes(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListBuyerCodes(r.Context())
	if err != nil {
		writeError(w, r, "failed to load buyer codes", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// createVendorCode handles POST /api/codes/vendors.
func (h *Handler) createVendorCode(w http.ResponseWriter, r *http.Request) {
	var req app.GenerateVendorCodeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.GenerateVendorCode(r.Context(), req)
	if err != nil {
		h.writeCodeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, result)
}

// vendorFormOptions handles GET /api/codes/vendors/options: the job-work
// category and sub-category dropdown lists.
func (h *Handler) vendorFormOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.VendorFormOptions())
}

// writeCodeError maps code-generation failures onto HTTP statuses: field
// validation blocks with 422, an overlapping submission with 409, anything
// else is a storage fault.
func (h *Handler) writeCodeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		writeFieldErrors(w, r, verr.Fields)
	case errors.Is(err, app.ErrSubmissionInFlight):
		writeError(w, r, "a submission is already in progress", "SUBMISSION_IN_FLIGHT", http.StatusConflict)
	case errors.Is(err, core.ErrVendorCodeUnparseable):
		writeError(w, r, err.Error(), "CODE_ALLOCATION_FAILED", http.StatusUnprocessableEntity)
	default:
		writeError(w, r, "failed to generate code", "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
