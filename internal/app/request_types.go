package app

import "binder/internal/core"

// GenerateBuyerCodeRequest carries the buyer form fields.
type GenerateBuyerCodeRequest struct {
	core.BuyerInput
}

// GenerateVendorCodeRequest carries the vendor form fields.
type GenerateVendorCodeRequest struct {
	core.VendorInput
}

// VendorSheetRequest selects the master sheet view: an optional free-text
// search term, the clicked sort column, and the previous sort state so the
// toggle policy (same column reverses, new column resets to ascending) is
// applied centrally.
type VendorSheetRequest struct {
	Search   string
	SortKey  string
	PrevSort core.SortState
	HasClick bool // true when SortKey is a fresh column-header click
}
