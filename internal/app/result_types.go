package app

import (
	"binder/internal/auth"
	"binder/internal/core"
)

// SessionResult is returned by the authenticate operations.
type SessionResult struct {
	Token   string     `json:"token"`
	User    *auth.User `json:"user"`
	Message string     `json:"message"`
}

// BuyerCodeResult is returned by GenerateBuyerCode.
type BuyerCodeResult struct {
	Record *core.BuyerRecord `json:"record"`
}

// BuyerListResult is returned by ListBuyerCodes.
type BuyerListResult struct {
	Records []core.BuyerRecord `json:"records"`
}

// VendorCodeResult is returned by GenerateVendorCode.
type VendorCodeResult struct {
	Record *core.VendorRecord `json:"record"`
}

// VendorOptionsResult carries the vendor form dropdown option lists.
type VendorOptionsResult struct {
	Categories    []string `json:"categories"`
	SubCategories []string `json:"subCategories"`
}

// VendorSheetResult is the display-ready master sheet view.
type VendorSheetResult struct {
	Records  []core.VendorRecord `json:"records"`
	Total    int                 `json:"total"`    // records before search filtering
	Matching int                 `json:"matching"` // records after search filtering
	Sort     core.SortState      `json:"sort"`
}

// FAQResult is returned by ListFAQs.
type FAQResult struct {
	Categories []core.FAQCategory `json:"categories"`
	Entries    []core.FAQ         `json:"entries"`
}

// ChatResult is returned by Chat. Text is already formatted for display
// (markdown bold converted to emphasis).
type ChatResult struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}
